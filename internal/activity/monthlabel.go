package activity

import (
	"fmt"
	"time"
)

// monthLabel renders the month/year label embedded in payment reminder
// text, in the configured locale. Unsupported locales fall back to
// English ("May 2025").
func monthLabel(t time.Time, locale string) string {
	switch locale {
	case "ko":
		return fmt.Sprintf("%d년 %d월", t.Year(), int(t.Month()))
	default:
		return fmt.Sprintf("%s %d", t.Month().String(), t.Year())
	}
}
