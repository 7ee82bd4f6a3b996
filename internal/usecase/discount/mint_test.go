package discount

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/barbeariamb/admin-api/internal/domain/discount"
)

var mintNow = time.Date(2026, time.August, 30, 9, 0, 0, 0, time.UTC)

func TestMintDiscountShape(t *testing.T) {
	repo := newFakeDiscountRepo()
	uc := NewCreateBirthdayDiscount(repo, fixedClock(mintNow))
	clientID := uuid.New()

	d, err := uc.Execute(context.Background(), clientID, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(d.Code, domain.CodePrefix) {
		t.Fatalf("code %q lacks prefix %q", d.Code, domain.CodePrefix)
	}
	if len(d.Code) != len(domain.CodePrefix)+6 {
		t.Fatalf("code %q has wrong length", d.Code)
	}
	for _, r := range d.Code[len(domain.CodePrefix):] {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'Z') {
			t.Fatalf("code %q has character %q outside the alphabet", d.Code, r)
		}
	}

	if d.Percent != 15 {
		t.Fatalf("percent = %d, want 15", d.Percent)
	}
	if d.ClientID != clientID {
		t.Fatalf("client = %s, want %s", d.ClientID, clientID)
	}
	if want := mintNow.AddDate(0, 0, 30); !d.ExpiresAt.Equal(want) {
		t.Fatalf("expires_at = %v, want %v", d.ExpiresAt, want)
	}
	if d.UsedAt != nil {
		t.Fatal("a fresh code must be unused")
	}
}

func TestClampPercent(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 0},
		{0, 0},
		{10, 10},
		{100, 100},
		{150, 100},
	}
	for _, tc := range cases {
		if got := ClampPercent(tc.in); got != tc.want {
			t.Errorf("ClampPercent(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMintRetriesOnDuplicateCode(t *testing.T) {
	repo := newFakeDiscountRepo()
	repo.dupUntil = 2

	uc := NewCreateBirthdayDiscount(repo, fixedClock(mintNow))

	d, err := uc.Execute(context.Background(), uuid.New(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d == nil {
		t.Fatal("expected a minted code")
	}
	if repo.createCalls != 3 {
		t.Fatalf("create attempts = %d, want 3", repo.createCalls)
	}
}

func TestMintGivesUpAfterRetries(t *testing.T) {
	repo := newFakeDiscountRepo()
	repo.dupUntil = 10

	uc := NewCreateBirthdayDiscount(repo, fixedClock(mintNow))

	_, err := uc.Execute(context.Background(), uuid.New(), 10)
	if err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if repo.createCalls != 3 {
		t.Fatalf("create attempts = %d, want 3", repo.createCalls)
	}
}

func TestMintDoesNotRetryOtherErrors(t *testing.T) {
	repo := newFakeDiscountRepo()
	repo.createErr = errors.New("connection refused")

	uc := NewCreateBirthdayDiscount(repo, fixedClock(mintNow))

	_, err := uc.Execute(context.Background(), uuid.New(), 10)
	if err == nil {
		t.Fatal("expected an error")
	}
	if repo.createCalls != 1 {
		t.Fatalf("create attempts = %d, want 1", repo.createCalls)
	}
}

func TestGeneratedCodesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := domain.GenerateCode()
		if err != nil {
			t.Fatal(err)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q in 100 samples", code)
		}
		seen[code] = true
	}
}
