package workshop

import (
	"time"

	"github.com/etnz/workshop/date"
)

// Session bundles the five entity screens of the dashboard. All state lives
// in the session: there is no persistence, and a new session starts empty.
// Each screen exclusively owns its collection; nothing else mutates it.
type Session struct {
	Stock     *Screen[StockItem]
	Workers   *Screen[Worker]
	Materials *Screen[RawMaterial]
	Expenses  *Screen[Expense]
	Bills     *BillScreen
}

// NewSession creates an empty session. now is the clock capability used for
// bill numbers, stock timestamps and default dates; nil means time.Now.
func NewSession(now func() time.Time) *Session {
	return &Session{
		Stock: newScreen("stock item", now, StockItem.Validate, func(s StockItem, t time.Time) StockItem {
			// Stamped on every successful submit, regardless of which fields changed.
			s.LastUpdated = date.Of(t)
			return s
		}),
		Workers:   newScreen("worker", now, Worker.Validate, nil),
		Materials: newScreen("raw material", now, RawMaterial.Validate, nil),
		Expenses:  newScreen("expense", now, Expense.Validate, nil),
		Bills:     newBillScreen(now),
	}
}

// UpdateAttendance replaces only the attendance fields of the worker bound
// to id, leaving all other worker fields untouched. Unknown ids fail
// wrapping ErrNotFound and leave the collection unchanged.
func (s *Session) UpdateAttendance(id string, a Attendance) (Worker, error) {
	w, ok := s.Workers.Store().Get(id)
	if !ok {
		return Worker{}, notFound("worker", id)
	}
	if err := a.Validate(); err != nil {
		return Worker{}, err
	}
	return s.Workers.Store().Replace(id, a.apply(w))
}
