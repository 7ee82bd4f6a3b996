package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/barbeariamb/admin-api/internal/httperr"
	"github.com/barbeariamb/admin-api/internal/httpresp"
	"github.com/barbeariamb/admin-api/internal/settings"
)

type SettingsHandler struct {
	settings *settings.Service
}

func NewSettingsHandler(svc *settings.Service) *SettingsHandler {
	return &SettingsHandler{settings: svc}
}

type birthdayMessageRequest struct {
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
}

func (h *SettingsHandler) GetBirthdayMessage(c *gin.Context) {
	subject, body, err := h.settings.BirthdayMessage(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Erro ao carregar mensagem de aniversário.")
		return
	}

	httpresp.OK(c, gin.H{"subject": subject, "body": body})
}

// UpdateBirthdayMessage persists the supplied fields; a blank value resets
// that field to the built-in default.
func (h *SettingsHandler) UpdateBirthdayMessage(c *gin.Context) {
	var req birthdayMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx := c.Request.Context()

	if req.Subject != nil {
		subject := strings.TrimSpace(*req.Subject)
		if subject == "" {
			subject = settings.DefaultBirthdaySubject
		}
		if err := h.settings.Set(ctx, settings.BirthdaySubjectKey, subject); err != nil {
			httperr.Internal(c, "failed_to_save_settings", "Erro ao salvar mensagem de aniversário.")
			return
		}
	}

	if req.Body != nil {
		body := strings.TrimSpace(*req.Body)
		if body == "" {
			body = settings.DefaultBirthdayBody
		}
		if err := h.settings.Set(ctx, settings.BirthdayBodyKey, body); err != nil {
			httperr.Internal(c, "failed_to_save_settings", "Erro ao salvar mensagem de aniversário.")
			return
		}
	}

	subject, body, err := h.settings.BirthdayMessage(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Erro ao carregar mensagem de aniversário.")
		return
	}

	httpresp.OKMessage(c, "Mensagem de aniversário atualizada.", gin.H{
		"subject": subject,
		"body":    body,
	})
}
