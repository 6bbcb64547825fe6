package export

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"

	"github.com/etnz/workshop"
)

// Query evaluates a jsonpath expression against the bill's JSON document,
// e.g. "$.totalAmount" or "$.items[0].name".
func Query(b workshop.Bill, path string) (any, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encoding bill %s: %w", b.BillNumber, err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("decoding bill %s: %w", b.BillNumber, err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer, or
	// a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return jval, nil
}
