package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const month = `(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t|tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

const dateRange = month + `\s+(\d{4})\s*(?:[-–—]|to)\s*(` + month + `|Present|Current|Now)\s*(\d{4})?`

var (
	// dateRangeOnly matches a line that holds nothing but a date range
	dateRangeOnly = regexp.MustCompile(`(?i)^\s*` + dateRange + `\s*$`)
	dateRangeAny  = regexp.MustCompile(`(?i)` + dateRange)
)

var monthNumbers = map[string]string{
	"jan": "01", "january": "01",
	"feb": "02", "february": "02",
	"mar": "03", "march": "03",
	"apr": "04", "april": "04",
	"may": "05",
	"jun": "06", "june": "06",
	"jul": "07", "july": "07",
	"aug": "08", "august": "08",
	"sep": "09", "sept": "09", "september": "09",
	"oct": "10", "october": "10",
	"nov": "11", "november": "11",
	"dec": "12", "december": "12",
}

// DateRange is a parsed start/end pair. Either side may be empty when the
// source did not pin it to a month and year.
type DateRange struct {
	Start string
	End   string
}

// yearMonth converts a month name and year to "YYYY-MM". Present, Current
// and Now map to types.PresentDate; anything else without a year is "".
func yearMonth(m, year string) string {
	key := strings.ToLower(m)
	switch key {
	case "present", "current", "now":
		return types.PresentDate
	}
	num, ok := monthNumbers[key]
	if !ok || year == "" {
		return ""
	}
	return year + "-" + num
}

func rangeFromMatch(m []string) DateRange {
	// groups: start month, start year, end month (whole), end month (name), end year
	return DateRange{
		Start: yearMonth(m[1], m[2]),
		End:   yearMonth(m[3], m[5]),
	}
}

// ParseDateRange finds the first date range anywhere in s
func ParseDateRange(s string) (DateRange, bool) {
	m := dateRangeAny.FindStringSubmatch(s)
	if m == nil {
		return DateRange{}, false
	}
	return rangeFromMatch(m), true
}

// parsePureDateLine reports whether line is only a date range and parses it
func parsePureDateLine(line string) (DateRange, bool) {
	m := dateRangeOnly.FindStringSubmatch(line)
	if m == nil {
		return DateRange{}, false
	}
	return rangeFromMatch(m), true
}
