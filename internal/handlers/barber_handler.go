package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barbeariamb/admin-api/internal/httperr"
	"github.com/barbeariamb/admin-api/internal/httpresp"
	"github.com/barbeariamb/admin-api/internal/models"
	"github.com/barbeariamb/admin-api/internal/timezone"
)

type BarberHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewBarberHandler(db *gorm.DB, tz string) *BarberHandler {
	return &BarberHandler{db: db, loc: timezone.Location(tz)}
}

type createBarberRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Specialties string `json:"specialties"`
}

type updateBarberRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Specialties *string `json:"specialties"`
}

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}
	httpresp.OK(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req createBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" {
		httperr.BadRequest(c, "missing_required_fields", "Nome é obrigatório.")
		return
	}

	barber := models.Barber{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Specialties: req.Specialties,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	httpresp.Created(c, "Barbeiro criado com sucesso!", barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "ID do barbeiro inválido.")
		return
	}

	var req updateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	if req.Name != nil {
		barber.Name = *req.Name
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.Email != nil {
		barber.Email = *req.Email
	}
	if req.Specialties != nil {
		barber.Specialties = *req.Specialties
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	httpresp.OKMessage(c, "Barbeiro atualizado com sucesso!", barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "ID do barbeiro inválido.")
		return
	}

	res := h.db.Delete(&models.Barber{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao deletar barbeiro.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	httpresp.OKMessage(c, "Barbeiro removido com sucesso!", nil)
}

// Agenda lists a barber's appointments for one day (query param "date",
// default today in shop time).
func (h *BarberHandler) Agenda(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "ID do barbeiro inválido.")
		return
	}

	day := time.Now().In(h.loc)
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		day = parsed
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, h.loc)
	end := start.Add(24 * time.Hour)

	var agenda []models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("Service").
		Where("barber_id = ? AND date >= ? AND date < ?", id, start, end).
		Order("date ASC").
		Find(&agenda).Error; err != nil {
		httperr.Internal(c, "failed_to_load_agenda", "Erro ao buscar agenda do barbeiro.")
		return
	}

	httpresp.OK(c, agenda)
}
