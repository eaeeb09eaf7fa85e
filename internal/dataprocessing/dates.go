package dataprocessing

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts tolerated in the sales source. Non-padded reference values let
// time.Parse accept both "5/10/2010" and "05/10/2010".
const (
	layoutSlashDMY = "2/1/2006"
	layoutDashYMD  = "2006-1-2"
	layoutDashDMY  = "2-1-2006"
)

// ParseSaleDate parses a sale date, choosing candidate layouts from the
// delimiter found in the string: "/" means day/month/year, "-" means
// year-month-day with day-month-year as fallback.
func ParseSaleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, "/"):
		return time.Parse(layoutSlashDMY, s)
	case strings.Contains(s, "-"):
		if t, err := time.Parse(layoutDashYMD, s); err == nil {
			return t, nil
		}
		return time.Parse(layoutDashDMY, s)
	default:
		return time.Time{}, fmt.Errorf("unrecognized date format: %q", s)
	}
}
