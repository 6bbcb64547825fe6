package workshop

import (
	"fmt"
	"time"
)

// Screen drives the create/edit lifecycle for one entity collection. It is
// in one of two states: Creating (no identity bound) or Editing (bound to
// an existing identity). The draft is a value copy; the store is only
// touched by a successful Submit.
type Screen[R Record[R]] struct {
	store    *Store[R]
	now      func() time.Time
	validate func(R) error
	finalize func(R, time.Time) R // optional stamp applied on every submit

	draft   *R
	editing string // bound identity, "" while creating
}

func newScreen[R Record[R]](kind string, now func() time.Time, validate func(R) error, finalize func(R, time.Time) R) *Screen[R] {
	if now == nil {
		now = time.Now
	}
	return &Screen[R]{store: NewStore[R](kind), now: now, validate: validate, finalize: finalize}
}

// Store returns the screen's exclusively-owned collection.
func (s *Screen[R]) Store() *Store[R] { return s.store }

// Create enters the Creating state with the given blank or default-populated draft.
func (s *Screen[R]) Create(blank R) *R {
	s.draft = &blank
	s.editing = ""
	return s.draft
}

// Edit enters the Editing state with a draft copied from the record bound to
// id. Edits to the draft do not mutate the store until Submit.
func (s *Screen[R]) Edit(id string) (*R, error) {
	r, ok := s.store.Get(id)
	if !ok {
		return nil, notFound(s.store.kind, id)
	}
	s.draft = &r
	s.editing = id
	return s.draft, nil
}

// Draft returns the in-progress draft, or nil when no edit session is open.
func (s *Screen[R]) Draft() *R { return s.draft }

// Editing reports whether the open draft is bound to an existing identity.
func (s *Screen[R]) Editing() bool { return s.editing != "" }

// Submit validates the draft and commits it: replacing the bound record when
// Editing (identity preserved), appending with a fresh identity when
// Creating. On failure nothing is committed and the draft stays open.
func (s *Screen[R]) Submit() (R, error) {
	var zero R
	if s.draft == nil {
		return zero, fmt.Errorf("no draft to submit: %w", ErrInvariant)
	}
	r := *s.draft
	if s.finalize != nil {
		r = s.finalize(r, s.now())
	}
	if err := s.validate(r); err != nil {
		return zero, err
	}
	var committed R
	if s.editing != "" {
		var err error
		committed, err = s.store.Replace(s.editing, r)
		if err != nil {
			return zero, err
		}
	} else {
		committed = s.store.Create(r)
	}
	s.Cancel()
	return committed, nil
}

// Cancel discards the draft unconditionally; no partial write reaches the store.
func (s *Screen[R]) Cancel() {
	s.draft = nil
	s.editing = ""
}

// BillScreen drives the bill lifecycle. Bills edit through a BillDraft
// rather than a plain record copy, so line-item invariants hold while the
// form is open.
type BillScreen struct {
	store   *Store[Bill]
	now     func() time.Time
	draft   *BillDraft
	editing string
}

func newBillScreen(now func() time.Time) *BillScreen {
	if now == nil {
		now = time.Now
	}
	return &BillScreen{store: NewStore[Bill]("bill"), now: now}
}

// Store returns the screen's exclusively-owned bill collection.
func (s *BillScreen) Store() *Store[Bill] { return s.store }

// Create enters the Creating state with a fresh draft. The bill number is
// generated here, from the clock, exactly once.
func (s *BillScreen) Create() *BillDraft {
	s.draft = NewBillDraft(s.now())
	s.editing = ""
	return s.draft
}

// Edit enters the Editing state with a draft copied from the stored bill.
// The existing bill number is kept, never regenerated.
func (s *BillScreen) Edit(id string) (*BillDraft, error) {
	b, ok := s.store.Get(id)
	if !ok {
		return nil, notFound("bill", id)
	}
	s.draft = DraftOf(b)
	s.editing = id
	return s.draft, nil
}

// Draft returns the in-progress draft, or nil when no edit session is open.
func (s *BillScreen) Draft() *BillDraft { return s.draft }

// Editing reports whether the open draft is bound to an existing identity.
func (s *BillScreen) Editing() bool { return s.editing != "" }

// Submit validates and commits the draft, like Screen.Submit.
func (s *BillScreen) Submit() (Bill, error) {
	if s.draft == nil {
		return Bill{}, fmt.Errorf("no draft to submit: %w", ErrInvariant)
	}
	b := s.draft.Bill()
	if err := b.Validate(); err != nil {
		return Bill{}, err
	}
	var committed Bill
	if s.editing != "" {
		var err error
		committed, err = s.store.Replace(s.editing, b)
		if err != nil {
			return Bill{}, err
		}
	} else {
		committed = s.store.Create(b)
	}
	s.Cancel()
	return committed, nil
}

// Cancel discards the draft unconditionally.
func (s *BillScreen) Cancel() {
	s.draft = nil
	s.editing = ""
}
