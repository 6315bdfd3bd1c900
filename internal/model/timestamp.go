package model

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"time"
)

// timestampLayouts are tried in order. The booking API omits the zone, in
// which case the time is taken as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	time.DateTime,
}

// Timestamp is a time decoded leniently from the booking API.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON accepts RFC 3339, zone-less ISO 8601 or null. Any other
// value is logged and decodes to the zero time, so a bad timestamp never
// rejects the option carrying it.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Debug("Ignoring non-string timestamp", "value", string(data))
		return nil
	}
	if raw == "" {
		return nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	slog.Debug("Ignoring unrecognised timestamp", "value", raw)
	return nil
}

// MarshalJSON writes RFC 3339, or null for the zero time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}
