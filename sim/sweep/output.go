package sweep

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Output formats understood by Write.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// IsValidFormat returns true if format is a recognized output format.
func IsValidFormat(format string) bool {
	return format == FormatCSV || format == FormatJSON
}

var csvHeader = []string{
	"lambda", "p", "throughput", "avg_queue_length", "theoretical",
	"successes", "collisions", "frames_generated", "frames_lost",
}

// Write encodes res to w in the given format.
func Write(w io.Writer, res *Result, format string) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	default:
		return fmt.Errorf("unknown output format %q; valid: csv, json", format)
	}
}

// WriteCSV writes one row per configuration point, series after series.
func WriteCSV(w io.Writer, res *Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, s := range res.Series {
		for _, pt := range s.Points {
			row := []string{
				formatFloat(pt.Lambda),
				formatFloat(pt.P),
				formatFloat(pt.Throughput),
				formatFloat(pt.AvgQueueLength),
				formatFloat(pt.Theoretical),
				strconv.Itoa(pt.Successes),
				strconv.Itoa(pt.Collisions),
				strconv.Itoa(pt.FramesGenerated),
				strconv.Itoa(pt.FramesLost),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing csv row: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the full result, summaries included.
func WriteJSON(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
