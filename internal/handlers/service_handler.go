package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/barbeariamb/admin-api/internal/httperr"
	"github.com/barbeariamb/admin-api/internal/httpresp"
	"github.com/barbeariamb/admin-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type createServiceRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Description string   `json:"description"`
}

type updateServiceRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	DurationMin *int     `json:"duration_min"`
	Description *string  `json:"description"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("name ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}
	httpresp.OK(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "ID de serviço inválido.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req createServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" {
		httperr.BadRequest(c, "missing_required_fields", "Nome é obrigatório.")
		return
	}
	if req.Price == nil || *req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço deve ser um número maior ou igual a zero.")
		return
	}
	if req.DurationMin == nil || *req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duração deve ser um número positivo (minutos).")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Price:       *req.Price,
		DurationMin: *req.DurationMin,
		Description: req.Description,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	httpresp.Created(c, "Serviço criado com sucesso!", service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "ID de serviço inválido.")
		return
	}

	var req updateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "invalid_name", "Nome não pode ser vazio.")
			return
		}
		service.Name = *req.Name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			httperr.BadRequest(c, "invalid_price", "Preço deve ser um número maior ou igual a zero.")
			return
		}
		service.Price = *req.Price
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duração deve ser um número positivo (minutos).")
			return
		}
		service.DurationMin = *req.DurationMin
	}
	if req.Description != nil {
		service.Description = *req.Description
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OKMessage(c, "Serviço atualizado com sucesso!", service)
}

// Delete refuses to remove a service still referenced by appointments.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "ID de serviço inválido.")
		return
	}

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	var linked int64
	if err := h.db.Model(&models.Appointment{}).
		Where("service_id = ?", id).
		Count(&linked).Error; err != nil {
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}
	if linked > 0 {
		httperr.Conflict(c, "service_in_use",
			"Não é possível excluir serviço com agendamentos vinculados. Cancele ou remova os agendamentos primeiro.")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao deletar serviço.")
		return
	}

	httpresp.OKMessage(c, "Serviço removido com sucesso!", nil)
}
