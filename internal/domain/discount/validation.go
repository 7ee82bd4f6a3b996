package discount

import (
	"time"

	"github.com/barbeariamb/admin-api/internal/models"
)

const (
	ReasonNotFound = "code_not_found"
	ReasonUsed     = "code_already_used"
	ReasonExpired  = "code_expired"
)

// Verdict is the outcome of validating a code. Reason is set only when the
// code is rejected; Discount only when it is accepted.
type Verdict struct {
	Valid    bool
	Reason   string
	Discount *models.DiscountCode
}

func NotFound() Verdict {
	return Verdict{Valid: false, Reason: ReasonNotFound}
}

// Validate checks a loaded code against the current time. Expiry wins over
// prior use: an expired code reports expired even when used_at is set.
func Validate(d *models.DiscountCode, now time.Time) Verdict {
	if d.ExpiresAt.Before(now) {
		return Verdict{Valid: false, Reason: ReasonExpired}
	}

	if d.UsedAt != nil {
		return Verdict{Valid: false, Reason: ReasonUsed}
	}

	return Verdict{Valid: true, Discount: d}
}
