package cli

import (
	"io"
	"log/slog"
	"time"

	"github.com/schollz/progressbar/v3"
)

const spinnerInterval = 100 * time.Millisecond

// WithSpinner runs fn while an indeterminate spinner with description is
// drawn on w, then clears the spinner line.
func WithSpinner[T any](w io.Writer, description string, fn func() T) T {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := bar.Add(1); err != nil {
					slog.Warn("Failed to update spinner", "error", err)
				}
			}
		}
	}()

	result := fn()
	close(done)
	<-stopped

	if err := bar.Finish(); err != nil {
		slog.Warn("Failed to finish spinner", "error", err)
	}
	return result
}
