package entities

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDataHora_UnmarshalJSON(t *testing.T) {
	t.Run("naive datetime without timezone", func(t *testing.T) {
		var d DataHora
		if err := json.Unmarshal([]byte(`"2026-08-28T12:34:56.123456"`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Year() != 2026 || d.Month() != time.August || d.Second() != 56 {
			t.Fatalf("unexpected time: %v", d.Time)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		var d DataHora
		if err := json.Unmarshal([]byte(`"2026-08-28T12:34:56Z"`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Hour() != 12 {
			t.Fatalf("unexpected time: %v", d.Time)
		}
	})

	t.Run("null stays zero", func(t *testing.T) {
		var d DataHora
		if err := json.Unmarshal([]byte(`null`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.IsZero() {
			t.Fatalf("expected zero time, got %v", d.Time)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		var d DataHora
		if err := json.Unmarshal([]byte(`"ontem"`), &d); err == nil {
			t.Fatalf("expected error for garbage datetime")
		}
	})
}

func TestDataHora_MarshalJSON(t *testing.T) {
	d := DataHora{Time: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2026-08-28T12:00:00Z"` {
		t.Fatalf("unexpected json: %s", b)
	}

	var zero DataHora
	b, err = json.Marshal(zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `null` {
		t.Fatalf("expected null for zero time, got %s", b)
	}
}
