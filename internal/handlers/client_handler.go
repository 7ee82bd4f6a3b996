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

type ClientHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewClientHandler(db *gorm.DB, tz string) *ClientHandler {
	return &ClientHandler{db: db, loc: timezone.Location(tz)}
}

type createClientRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BirthDate   string `json:"birth_date"`
	Preferences string `json:"preferences"`
}

type updateClientRequest struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	BirthDate   *string `json:"birth_date"`
	Preferences *string `json:"preferences"`
}

func (h *ClientHandler) parseBirthDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, h.loc); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ======================================================
// LIST (with search)
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Client{}).Order("name ASC")

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"name ILIKE ? OR phone LIKE ? OR email ILIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Erro ao listar clientes.")
		return
	}

	httpresp.OK(c, clients)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name == "" || req.Phone == "" {
		httperr.BadRequest(c, "missing_required_fields", "Nome e telefone são obrigatórios.")
		return
	}

	birthDate, err := h.parseBirthDate(req.BirthDate)
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
		return
	}

	client := models.Client{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		BirthDate:   birthDate,
		Preferences: req.Preferences,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "Erro ao criar cliente.")
		return
	}

	httpresp.Created(c, "Cliente criado com sucesso!", client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "ID do cliente inválido.")
		return
	}

	var req updateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno do servidor.")
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Preferences != nil {
		client.Preferences = *req.Preferences
	}
	if req.BirthDate != nil {
		birthDate, err := h.parseBirthDate(*req.BirthDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
			return
		}
		client.BirthDate = birthDate
	}

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "Erro ao atualizar cliente.")
		return
	}

	httpresp.OKMessage(c, "Cliente atualizado com sucesso!", client)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "ID do cliente inválido.")
		return
	}

	res := h.db.Delete(&models.Client{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_client", "Erro ao deletar cliente.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OKMessage(c, "Cliente removido com sucesso!", nil)
}

// ======================================================
// HISTORY
// ======================================================

func (h *ClientHandler) History(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_client_id", "ID do cliente inválido.")
		return
	}

	var history []models.Appointment
	if err := h.db.
		Preload("Barber").
		Preload("Service").
		Where("client_id = ?", id).
		Order("date DESC").
		Find(&history).Error; err != nil {
		httperr.Internal(c, "failed_to_load_history", "Erro ao buscar histórico do cliente.")
		return
	}

	httpresp.OK(c, history)
}
