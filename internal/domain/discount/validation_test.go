package discount

import (
	"testing"
	"time"

	"github.com/barbeariamb/admin-api/internal/models"
)

func TestValidate(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	used := now.Add(-48 * time.Hour)

	cases := []struct {
		name   string
		code   models.DiscountCode
		valid  bool
		reason string
	}{
		{
			name:  "fresh code",
			code:  models.DiscountCode{ExpiresAt: now.AddDate(0, 0, 10)},
			valid: true,
		},
		{
			name:   "used code",
			code:   models.DiscountCode{ExpiresAt: now.AddDate(0, 0, 10), UsedAt: &used},
			reason: ReasonUsed,
		},
		{
			name:   "expired code",
			code:   models.DiscountCode{ExpiresAt: now.AddDate(0, 0, -1)},
			reason: ReasonExpired,
		},
		{
			name:   "expired and used reports expired",
			code:   models.DiscountCode{ExpiresAt: now.AddDate(0, 0, -1), UsedAt: &used},
			reason: ReasonExpired,
		},
		{
			name:  "expires later today",
			code:  models.DiscountCode{ExpiresAt: now.Add(time.Minute)},
			valid: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := Validate(&tc.code, now)
			if v.Valid != tc.valid {
				t.Fatalf("valid = %v, want %v", v.Valid, tc.valid)
			}
			if v.Reason != tc.reason {
				t.Fatalf("reason = %q, want %q", v.Reason, tc.reason)
			}
			if tc.valid && v.Discount != &tc.code {
				t.Fatal("valid verdict must carry the code")
			}
		})
	}
}

func TestNotFoundVerdict(t *testing.T) {
	v := NotFound()
	if v.Valid || v.Reason != ReasonNotFound || v.Discount != nil {
		t.Fatalf("verdict = %+v", v)
	}
}
