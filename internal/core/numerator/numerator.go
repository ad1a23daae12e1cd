// Package numerator provides sequential document numbering.
//
// Numbers are allocated from the visible document history rather than a
// database sequence: the next number is one past the highest numeric value
// already in use, zero-padded to a fixed width. Allocation is a pure function,
// so re-running it over the same history yields the same result.
package numerator

import (
	"fmt"
	"strconv"
)

// DefaultWidth is the zero-padding width of generated numbers ("000001").
// The width is fixed by configuration, never inferred from existing numbers.
const DefaultWidth = 6

// Config holds numbering configuration.
type Config struct {
	// Width is the minimum number width (default 6)
	Width int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth}
}

// Next returns the next document number given the numbers already in use.
// History entries that are not plain decimal numbers ("SPECIAL", "") are
// ignored, not treated as zero. With no matching entries the sequence starts
// at 1.
func Next(history []string, cfg Config) string {
	width := cfg.Width
	if width <= 0 {
		width = DefaultWidth
	}

	var max int64
	for _, number := range history {
		if n, ok := Parse(number); ok && n > max {
			max = n
		}
	}

	return fmt.Sprintf("%0*d", width, max+1)
}

// Parse extracts the numeric value of a formatted document number.
// Returns false for anything that is not an unsigned decimal integer.
func Parse(number string) (int64, bool) {
	if number == "" {
		return 0, false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(number, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
