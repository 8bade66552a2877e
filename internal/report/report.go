// Package report renders the result of a check run on the console,
// either as a small table or as a JSON envelope.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	domain "github.com/oggyb/restaurant-dbcheck/internal/domain/orders"
)

// Format selects how a check result is rendered.
type Format string

const (
	// FormatTable prints the column header over the right-aligned
	// value, the way the result set looks in an interactive client.
	FormatTable Format = "table"

	// FormatJSON prints the envelope used by machine consumers.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name coming from config or flags.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected table or json)", s)
	}
}

// CountPayload is the public-facing representation of a check result
// used in JSON output. It decouples the wire format from the domain
// entity.
type CountPayload struct {
	Orders    int64     `json:"orders"`
	CheckedAt time.Time `json:"checkedAt"`
	RunID     string    `json:"runId"`
}

// CountReport is the JSON envelope for a successful check.
type CountReport struct {
	Success   bool         `json:"success"`
	Data      CountPayload `json:"data"`
	Timestamp string       `json:"timestamp"`
}

// Write renders the check result to w in the requested format.
func Write(w io.Writer, format Format, c *domain.Count) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, c)
	case FormatTable:
		return writeTable(w, c)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeTable prints the single-row, single-column result table. The
// column is wide enough for whichever of header and value is longer.
func writeTable(w io.Writer, c *domain.Count) error {
	value := strconv.FormatInt(c.Orders, 10)

	width := len(domain.Column)
	if len(value) > width {
		width = len(value)
	}

	_, err := fmt.Fprintf(w, "%*s\n%*s\n", width, domain.Column, width, value)
	return err
}

// writeJSON encodes the envelope with the run metadata.
func writeJSON(w io.Writer, c *domain.Count) error {
	rep := CountReport{
		Success: true,
		Data: CountPayload{
			Orders:    c.Orders,
			CheckedAt: c.CheckedAt,
			RunID:     c.ID.String(),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	return json.NewEncoder(w).Encode(rep)
}
