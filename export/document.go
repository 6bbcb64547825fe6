package export

import (
	"encoding/json"
	"fmt"

	"github.com/etnz/workshop"
)

// Document renders the bill as an indented JSON document. The document
// carries the derived subtotal, gst amount and total alongside the inputs, so
// a consumer never has to recompute them.
func Document(b workshop.Bill) ([]byte, error) {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding bill %s: %w", b.BillNumber, err)
	}
	return data, nil
}
