package discount

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/barbeariamb/admin-api/internal/audit"
	domain "github.com/barbeariamb/admin-api/internal/domain/discount"
	"github.com/barbeariamb/admin-api/internal/mail"
	"github.com/barbeariamb/admin-api/internal/settings"
)

// MessageSource supplies the configured birthday subject/body templates.
type MessageSource interface {
	BirthdayMessage(ctx context.Context) (subject, body string, err error)
}

type SweepSent struct {
	ClientID uuid.UUID `json:"client_id"`
	Email    string    `json:"email"`
	Code     string    `json:"code"`
}

type SweepError struct {
	ClientID uuid.UUID `json:"client_id"`
	Email    string    `json:"email,omitempty"`
	Error    string    `json:"error"`
}

type SweepResult struct {
	Processed int          `json:"processed"`
	Sent      []SweepSent  `json:"sent"`
	Errors    []SweepError `json:"errors"`
}

// BirthdaySweep scans all clients whose birth date matches today's month and
// day, mints a discount per match and emails it. Per-client failures are
// collected, never escalated: a broken mailbox must not starve the rest of
// the batch.
type BirthdaySweep struct {
	repo     domain.Repository
	mint     *CreateBirthdayDiscount
	messages MessageSource
	mailer   mail.Mailer
	audit    *audit.Dispatcher
	logger   *zap.Logger
	now      func() time.Time
}

func NewBirthdaySweep(
	repo domain.Repository,
	mint *CreateBirthdayDiscount,
	messages MessageSource,
	mailer mail.Mailer,
	auditDispatcher *audit.Dispatcher,
	logger *zap.Logger,
	now func() time.Time,
) *BirthdaySweep {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BirthdaySweep{
		repo:     repo,
		mint:     mint,
		messages: messages,
		mailer:   mailer,
		audit:    auditDispatcher,
		logger:   logger,
		now:      now,
	}
}

func (uc *BirthdaySweep) Execute(
	ctx context.Context,
	percent int,
) (*SweepResult, error) {

	today := uc.now()
	percent = ClampPercent(percent)

	subject, body, err := uc.messages.BirthdayMessage(ctx)
	if err != nil {
		return nil, err
	}

	clients, err := uc.repo.ListBirthdayCandidates(ctx)
	if err != nil {
		return nil, err
	}

	result := &SweepResult{
		Sent:   []SweepSent{},
		Errors: []SweepError{},
	}

	for _, client := range clients {
		if client.BirthDate == nil || client.Email == "" {
			continue
		}

		birth := client.BirthDate.In(today.Location())
		if birth.Day() != today.Day() || birth.Month() != today.Month() {
			continue
		}

		result.Processed++

		d, err := uc.mint.Execute(ctx, client.ID, percent)
		if err != nil {
			uc.logger.Error("birthday sweep: mint failed",
				zap.String("client_id", client.ID.String()),
				zap.Error(err),
			)
			result.Errors = append(result.Errors, SweepError{
				ClientID: client.ID,
				Email:    client.Email,
				Error:    err.Error(),
			})
			continue
		}

		rendered := settings.Render(body, map[string]string{
			"name":      client.Name,
			"code":      d.Code,
			"percent":   strconv.Itoa(d.Percent),
			"expiresat": d.ExpiresAt.In(today.Location()).Format("02/01/2006"),
		})

		err = uc.mailer.Send(mail.Message{
			To:       client.Email,
			Subject:  subject,
			HTMLBody: settings.HTMLBody(rendered),
		})
		if err != nil {
			uc.logger.Error("birthday sweep: send failed",
				zap.String("client_id", client.ID.String()),
				zap.String("email", client.Email),
				zap.Error(err),
			)
			result.Errors = append(result.Errors, SweepError{
				ClientID: client.ID,
				Email:    client.Email,
				Error:    err.Error(),
			})
			continue
		}

		result.Sent = append(result.Sent, SweepSent{
			ClientID: client.ID,
			Email:    client.Email,
			Code:     d.Code,
		})
	}

	uc.audit.Dispatch(audit.Event{
		Action: "birthday_sweep",
		Entity: "discount_code",
		Metadata: map[string]int{
			"processed": result.Processed,
			"sent":      len(result.Sent),
			"errors":    len(result.Errors),
		},
	})

	return result, nil
}
