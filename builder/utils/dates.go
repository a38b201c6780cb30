package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// DateLayouts are the accepted front-matter date formats, tried in order.
var DateLayouts = []string{"2006-01-02 15:04", "2006-01-02"}

// AtomLayout is ISO-8601 UTC with a literal Z.
const AtomLayout = "2006-01-02T15:04:05Z"

// ParseDate reads a front-matter date. Strings must match one of
// DateLayouts; time.Time values from the YAML decoder are taken as is.
func ParseDate(value interface{}) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range DateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("date %q does not match %q or %q", s, DateLayouts[0], DateLayouts[1])
	case nil:
		return time.Time{}, fmt.Errorf("date is empty")
	default:
		return time.Time{}, fmt.Errorf("date has unsupported type %T", value)
	}
}

// FormatDate formats t with a strftime pattern such as "%B %d, %Y".
func FormatDate(t time.Time, pattern string) string {
	return strftime.Format(pattern, t)
}

// AtomDate renders t in UTC for feeds and sitemaps.
func AtomDate(t time.Time) string {
	return t.UTC().Format(AtomLayout)
}
