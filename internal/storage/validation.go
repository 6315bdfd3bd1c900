package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/skiphire/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrInvalidFetchRecord = errors.New("invalid fetch record")
)

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateFetchRecord(r model.FetchRecord) error {
	switch {
	case strings.TrimSpace(r.ID) == "":
		return fmt.Errorf("%w: missing id", ErrInvalidFetchRecord)
	case r.StartedAt.IsZero():
		return fmt.Errorf("%w: missing start time", ErrInvalidFetchRecord)
	case r.Outcome == "":
		return fmt.Errorf("%w: missing outcome", ErrInvalidFetchRecord)
	case r.Duration < 0:
		return fmt.Errorf("%w: negative duration", ErrInvalidFetchRecord)
	case r.ItemCount < 0:
		return fmt.Errorf("%w: negative item count", ErrInvalidFetchRecord)
	}
	return nil
}
