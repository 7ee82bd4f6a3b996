package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	discountdomain "github.com/barbeariamb/admin-api/internal/domain/discount"
	"github.com/barbeariamb/admin-api/internal/httperr"
	"github.com/barbeariamb/admin-api/internal/httpresp"
	ucAppointment "github.com/barbeariamb/admin-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create    *ucAppointment.CreateAppointment
	update    *ucAppointment.UpdateAppointment
	cancel    *ucAppointment.CancelAppointment
	listToday *ucAppointment.ListTodayAppointments
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	cancel *ucAppointment.CancelAppointment,
	listToday *ucAppointment.ListTodayAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:    create,
		update:    update,
		cancel:    cancel,
		listToday: listToday,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Date         string `json:"date"`
	ClientID     string `json:"client_id"`
	BarberID     string `json:"barber_id"`
	ServiceID    string `json:"service_id"`
	Notes        string `json:"notes"`
	DiscountCode string `json:"discount_code"`
}

type UpdateAppointmentRequest struct {
	Date      *string `json:"date"`
	ClientID  *string `json:"client_id"`
	BarberID  *string `json:"barber_id"`
	ServiceID *string `json:"service_id"`
	Notes     *string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Date:         req.Date,
		ClientID:     req.ClientID,
		BarberID:     req.BarberID,
		ServiceID:    req.ServiceID,
		Notes:        req.Notes,
		DiscountCode: req.DiscountCode,
	})
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	message := "Agendamento criado com sucesso!"
	data := gin.H{"appointment": out.Appointment}
	if out.DiscountCode != "" {
		message = fmt.Sprintf("Agendamento criado com sucesso! Desconto de %d%% aplicado.", out.AppliedPercent)
		data["applied_percent"] = out.AppliedPercent
		data["discount_code"] = out.DiscountCode
	}

	httpresp.Created(c, message, data)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "ID do agendamento inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, ucAppointment.UpdateAppointmentInput{
		Date:      req.Date,
		ClientID:  req.ClientID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Notes:     req.Notes,
	})
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	httpresp.OKMessage(c, "Agendamento atualizado com sucesso!", ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "ID do agendamento inválido.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		respondAppointmentError(c, err)
		return
	}

	httpresp.OKMessage(c, "Agendamento cancelado com sucesso!", ap)
}

// ======================================================
// TODAY
// ======================================================

func (h *AppointmentHandler) ListToday(c *gin.Context) {
	aps, err := h.listToday.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao buscar agendamentos de hoje.")
		return
	}

	httpresp.OK(c, aps)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func respondAppointmentError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno ao processar agendamento.")
		return
	}

	switch code {
	case "appointment_not_found":
		httperr.NotFound(c, code, "Agendamento não encontrado.")
	case "missing_required_fields":
		httperr.BadRequest(c, code, "Dados obrigatórios não informados.")
	case "invalid_client_id":
		httperr.BadRequest(c, code, "ID do cliente inválido.")
	case "invalid_barber_id":
		httperr.BadRequest(c, code, "ID do barbeiro inválido.")
	case "invalid_service_id":
		httperr.BadRequest(c, code, "ID do serviço inválido.")
	case "invalid_date":
		httperr.BadRequest(c, code, "Data inválida.")
	case "client_not_found":
		httperr.BadRequest(c, code, "Cliente não encontrado.")
	case "barber_not_found":
		httperr.BadRequest(c, code, "Barbeiro não encontrado.")
	case "service_not_found":
		httperr.BadRequest(c, code, "Serviço não encontrado.")
	case discountdomain.ReasonNotFound:
		httperr.BadRequest(c, code, "Código não encontrado.")
	case discountdomain.ReasonUsed:
		httperr.BadRequest(c, code, "Código já utilizado.")
	case discountdomain.ReasonExpired:
		httperr.BadRequest(c, code, "Código expirado.")
	case "discount_already_used":
		httperr.Conflict(c, code, "Código já utilizado.")
	case "invalid_state":
		httperr.Conflict(c, code, "Agendamento não pode ser cancelado.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno ao processar agendamento.")
	}
}
