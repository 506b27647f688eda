package gamecsv

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Row coercion never rejects: malformed input degrades to a safe default
// (zero amount, zero houses, false, zero time) so one bad cell cannot sink
// an import.

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp tries the accepted layouts in order. Unparseable input
// yields the zero time, which the store replaces with the current time.
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseAmount coerces text to a non-negative decimal; malformed or
// negative input becomes zero.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.Sign() < 0 {
		return decimal.Zero
	}
	return d
}

// maxHouseCount bounds coerced house counts; int conversion is undefined
// for floats beyond the int range, and nothing sane exceeds this anyway.
const maxHouseCount = 1 << 30

// parseHouses coerces text to a non-negative integer, truncating any
// fractional part. NaN and out-of-range values coerce to zero like the
// other malformed inputs.
func parseHouses(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || f < 0 || f > maxHouseCount {
		return 0
	}
	return int(f)
}

// hotelValues are the accepted truthy spellings, covering both the
// canonical export ("Yes") and files from the original Spanish tracker.
var hotelValues = map[string]bool{
	"sí": true, "si": true, "yes": true, "1": true, "true": true,
}

func parseHotel(s string) bool {
	return hotelValues[strings.ToLower(strings.TrimSpace(s))]
}
