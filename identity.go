package workshop

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// newID returns a fresh opaque identity. Identities are assigned once at
// creation and never reused or recomputed on edit.
func newID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms.
		panic("workshop: cannot generate identity: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// NewBillNumber derives a human-facing bill number from the current time,
// like "INV-493027". It is generated once when a bill draft is created and
// never regenerated afterwards.
func NewBillNumber(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "INV-" + ms
}
