package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barbeariamb/admin-api/internal/httperr"
	"github.com/barbeariamb/admin-api/internal/httpresp"
	"github.com/barbeariamb/admin-api/internal/models"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	var totalClients, totalBarbers, totalAppointments int64

	if err := h.db.Model(&models.Client{}).Count(&totalClients).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar dashboard.")
		return
	}
	if err := h.db.Model(&models.Barber{}).Count(&totalBarbers).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar dashboard.")
		return
	}
	if err := h.db.Model(&models.Appointment{}).Count(&totalAppointments).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar dashboard.")
		return
	}

	var recent []models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		Order("date DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		httperr.Internal(c, "failed_to_load_dashboard", "Erro ao carregar dashboard.")
		return
	}

	httpresp.OK(c, gin.H{
		"total_clients":       totalClients,
		"total_barbers":       totalBarbers,
		"total_appointments":  totalAppointments,
		"recent_appointments": recent,
	})
}
