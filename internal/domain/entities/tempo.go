package entities

import (
	"fmt"
	"strings"
	"time"
)

// DataHora wraps time.Time for the API's created-at timestamps.
//
// FastAPI serializes naive datetimes without a timezone
// ("2025-08-28T12:34:56.123456"), which time.Time rejects under RFC 3339.
// Unmarshal accepts both that form and proper RFC 3339.
type DataHora struct {
	time.Time
}

var formatosDataHora = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (d *DataHora) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range formatosDataHora {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid datetime %q", s)
}

func (d DataHora) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Time.Format(time.RFC3339) + `"`), nil
}
