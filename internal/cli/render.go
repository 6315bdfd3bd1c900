package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Veraticus/skiphire/internal/booking"
	"github.com/Veraticus/skiphire/internal/model"
)

// Available is shown for options that can be booked.
const Available = "Available"

// NoHistory is printed when the fetch log is empty.
const NoHistory = "No fetch attempts recorded yet."

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})
}

// RenderOptions prints the options as a table, one row per skip.
func RenderOptions(w io.Writer, options []model.SkipOption) error {
	t := newTable("Size", "Hire", "Before VAT", "VAT", "Total", "Availability")
	for _, opt := range options {
		availability := Available
		if warnings := booking.Warnings(opt); len(warnings) > 0 {
			availability = strings.Join(warnings, ", ")
		}
		t.Row(
			fmt.Sprintf("%d yd", opt.Size),
			fmt.Sprintf("%d days", opt.HirePeriodDays),
			booking.FormatPrice(opt.PriceBeforeVAT),
			opt.VAT.String()+"%",
			booking.FormatPrice(booking.TotalPrice(opt)),
			availability,
		)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("failed to write options: %w", err)
	}
	return nil
}

type optionJSON struct {
	model.SkipOption
	TotalPrice string   `json:"total_price"`
	Warnings   []string `json:"warnings"`
	Disabled   bool     `json:"disabled"`
}

// RenderOptionsJSON prints the options with their derived totals as JSON.
func RenderOptionsJSON(w io.Writer, options []model.SkipOption) error {
	out := make([]optionJSON, 0, len(options))
	for _, opt := range options {
		warnings := booking.Warnings(opt)
		if warnings == nil {
			warnings = []string{}
		}
		out = append(out, optionJSON{
			SkipOption: opt,
			TotalPrice: booking.FormatAmount(booking.TotalPrice(opt)),
			Warnings:   warnings,
			Disabled:   booking.IsDisabled(opt),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}
	return nil
}

// RenderFetchHistory prints logged fetch attempts, newest first.
func RenderFetchHistory(w io.Writer, records []model.FetchRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo(NoHistory))
		return err
	}

	t := newTable("Started", "Location", "Outcome", "Status", "Items", "Took", "Message")
	for _, r := range records {
		status := "-"
		if r.StatusCode != 0 {
			status = strconv.Itoa(r.StatusCode)
		}
		t.Row(
			r.StartedAt.Local().Format(time.DateTime),
			r.Location.String(),
			outcomeLabel(r.Outcome),
			status,
			strconv.Itoa(r.ItemCount),
			r.Duration.Round(time.Millisecond).String(),
			r.Message,
		)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return fmt.Errorf("failed to write fetch history: %w", err)
	}
	return nil
}

func outcomeLabel(o model.FetchOutcome) string {
	if o == model.OutcomeLoaded {
		return SuccessIcon + " " + string(o)
	}
	return ErrorIcon + " " + string(o)
}
