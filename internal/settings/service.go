package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barbeariamb/admin-api/internal/models"
)

const (
	BirthdaySubjectKey = "birthday_email_subject"
	BirthdayBodyKey    = "birthday_email_body"
)

const DefaultBirthdaySubject = "Seu desconto de aniversário na Barbearia MB"

const DefaultBirthdayBody = `Parabéns, {{name}}!

Para comemorar seu aniversário, criamos um desconto especial para você.

Código: {{code}}
Desconto: {{percent}}%
Válido até: {{expiresAt}}

Apresente este código na recepção no momento do atendimento.`

// Service persists key/value configuration rows with built-in fallbacks for
// the birthday message templates.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Get(ctx context.Context, key, def string) (string, error) {
	var row models.Setting
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return def, nil
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

func (s *Service) Set(ctx context.Context, key, value string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&models.Setting{Key: key, Value: value}).Error
}

// BirthdayMessage returns the configured subject/body, falling back to the
// defaults when no rows exist.
func (s *Service) BirthdayMessage(ctx context.Context) (subject, body string, err error) {
	subject, err = s.Get(ctx, BirthdaySubjectKey, DefaultBirthdaySubject)
	if err != nil {
		return "", "", err
	}

	body, err = s.Get(ctx, BirthdayBodyKey, DefaultBirthdayBody)
	if err != nil {
		return "", "", err
	}

	return subject, body, nil
}
