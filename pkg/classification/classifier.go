package classification

import (
	"fmt"
	"math"
	"time"

	"github.com/maximebaudoin/expired-products/entities"
)

const (
	ColorPrimary = "primary"
	ColorOk      = "ok"
	ColorInfo    = "info"
	ColorDanger  = "danger"
	ColorNone    = "none"
)

const LabelExpired = "Périmé"

const millisPerDay = 1000 * 60 * 60 * 24

// Result is the urgency banding of a product relative to "now". It is
// recomputed on every read and never persisted.
type Result struct {
	Color         string
	Content       string
	DaysRemaining int
}

// Classify maps an expiration date and the current instant to an urgency
// band. The day count is the rounded millisecond difference between the
// expiration date at local midnight and now, not a calendar-day
// subtraction, so the result depends on the time of day the call runs.
func Classify(date entities.ExpirationDate, now time.Time) Result {
	if date.IsZero() {
		return Result{Color: ColorPrimary, Content: "-"}
	}

	expiredAt := time.Date(date.Year, time.Month(date.Month), date.Day, 0, 0, 0, 0, now.Location())
	days := roundHalfUp(float64(expiredAt.Sub(now).Milliseconds()) / millisPerDay)

	switch {
	case days > 15:
		return Result{Color: ColorOk, Content: fmt.Sprintf("%d jours", days), DaysRemaining: days}
	case days > 5:
		return Result{Color: ColorInfo, Content: fmt.Sprintf("%d jours", days), DaysRemaining: days}
	case days >= 0:
		return Result{Color: ColorDanger, Content: fmt.Sprintf("%d jours", days), DaysRemaining: days}
	default:
		return Result{Color: ColorNone, Content: LabelExpired, DaysRemaining: days}
	}
}

// roundHalfUp rounds .5 toward positive infinity, unlike math.Round which
// rounds .5 away from zero.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
