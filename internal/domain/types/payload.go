package types

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// EmbeddedStatus is an application-level status carried inside a JSON body,
// independent of the HTTP status. The upstream API sends it either as a
// number or as a numeric string; anything else decodes to zero.
type EmbeddedStatus int

// UnmarshalJSON accepts 400, 400.0, 4e2, "400" and null. Fractions are
// floored so 399.5 stays below 400 and 400.5 does not.
func (s *EmbeddedStatus) UnmarshalJSON(b []byte) error {
	*s = 0
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*s = statusFromString(n.String())
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = statusFromString(strings.TrimSpace(str))
	}
	return nil
}

func statusFromString(v string) EmbeddedStatus {
	if i, err := strconv.Atoi(v); err == nil {
		return EmbeddedStatus(i)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Floor(f)
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return EmbeddedStatus(f)
}

// Payload is a decoded success body from the shapes API.
type Payload struct {
	Text   string         `json:"text,omitempty"`
	Shape  string         `json:"shape,omitempty"`
	Status EmbeddedStatus `json:"status,omitempty"`

	// Raw keeps every field of the body for diagnostics.
	Raw map[string]json.RawMessage `json:"-"`
}
