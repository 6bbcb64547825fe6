package workshop

import (
	"encoding/json"
	"fmt"
)

// Status is the payment status of a bill.
type Status int

const (
	// Draft is a bill still being prepared, not yet sent to the customer.
	Draft Status = iota
	// Sent is a bill delivered to the customer and awaiting payment.
	Sent
	// Paid is a bill fully settled by the customer.
	Paid
	// Overdue is a bill whose due date passed without full payment.
	Overdue
)

func (s Status) String() string {
	switch s {
	case Draft:
		return "Draft"
	case Sent:
		return "Sent"
	case Paid:
		return "Paid"
	case Overdue:
		return "Overdue"
	default:
		return "unknown"
	}
}

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "Draft":
		return Draft, nil
	case "Sent":
		return Sent, nil
	case "Paid":
		return Paid, nil
	case "Overdue":
		return Overdue, nil
	default:
		return 0, fmt.Errorf("unknown bill status: %q", s)
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
