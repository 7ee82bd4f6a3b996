package handlers

import (
	"github.com/gin-gonic/gin"

	discountdomain "github.com/barbeariamb/admin-api/internal/domain/discount"
	"github.com/barbeariamb/admin-api/internal/httperr"
	"github.com/barbeariamb/admin-api/internal/httpresp"
	ucDiscount "github.com/barbeariamb/admin-api/internal/usecase/discount"
)

type DiscountHandler struct {
	validate *ucDiscount.ValidateDiscountCode
	sweep    *ucDiscount.BirthdaySweep
}

func NewDiscountHandler(
	validate *ucDiscount.ValidateDiscountCode,
	sweep *ucDiscount.BirthdaySweep,
) *DiscountHandler {
	return &DiscountHandler{
		validate: validate,
		sweep:    sweep,
	}
}

// ======================================================
// VALIDATE (read-only)
// ======================================================

func (h *DiscountHandler) Validate(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		httperr.BadRequest(c, "missing_code", "Informe o código.")
		return
	}

	verdict, err := h.validate.Execute(c.Request.Context(), code)
	if err != nil {
		httperr.Internal(c, "failed_to_validate_code", "Erro ao validar código.")
		return
	}

	switch verdict.Reason {
	case discountdomain.ReasonNotFound:
		httperr.NotFound(c, verdict.Reason, "Código não encontrado.")
	case discountdomain.ReasonUsed:
		httperr.BadRequest(c, verdict.Reason, "Código já utilizado.")
	case discountdomain.ReasonExpired:
		httperr.BadRequest(c, verdict.Reason, "Código expirado.")
	default:
		httpresp.OK(c, verdict.Discount)
	}
}

// ======================================================
// BIRTHDAY SWEEP
// ======================================================

type sendBirthdayRequest struct {
	Percent *int `json:"percent"`
}

func (h *DiscountHandler) SendBirthday(c *gin.Context) {
	var req sendBirthdayRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	percent := 10
	if req.Percent != nil {
		percent = *req.Percent
	}

	result, err := h.sweep.Execute(c.Request.Context(), percent)
	if err != nil {
		httperr.Internal(c, "failed_to_run_sweep", "Erro ao processar aniversariantes.")
		return
	}

	httpresp.OK(c, result)
}
