package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// --------- Requests ---------

var staffRoles = map[string]bool{
	"owner":     true,
	"manager":   true,
	"stylist":   true,
	"assistant": true,
}

type CreateStaffRequest struct {
	Name        string   `json:"name" binding:"required"`
	Role        string   `json:"role"`
	Specialties []string `json:"specialties"`
	AvatarURL   string   `json:"avatar_url"`
}

type UpdateStaffRequest struct {
	Name        *string   `json:"name,omitempty"`
	Role        *string   `json:"role,omitempty"`
	Specialties *[]string `json:"specialties,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	Active      *bool     `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	activeStr := strings.TrimSpace(c.Query("active"))

	q := h.db.Where("salon_id = ?", salonID)

	if activeStr == "true" {
		q = q.Where("active = ?", true)
	} else if activeStr == "false" {
		q = q.Where("active = ?", false)
	}

	var staff []models.Staff
	if err := q.
		Order("name ASC").
		Find(&staff).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = "stylist"
	}
	if !staffRoles[role] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
		return
	}

	staff := models.Staff{
		SalonID:     salonID,
		Name:        req.Name,
		Role:        role,
		Specialties: req.Specialties,
		AvatarURL:   req.AvatarURL,
		Active:      true,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_staff"})
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	writeAudit(h.db, salonID, &userID, "staff_created", "staff", &staff.ID, nil)

	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	salonIDVal, _ := c.Get(middleware.ContextSalonID)
	salonID := salonIDVal.(uint)

	id := c.Param("id")

	var staff models.Staff
	if err := h.db.
		Where("id = ? AND salon_id = ?", id, salonID).
		First(&staff).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_staff"})
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Role != nil {
		role := strings.ToLower(strings.TrimSpace(*req.Role))
		if !staffRoles[role] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
			return
		}
		staff.Role = role
	}
	if req.Specialties != nil {
		staff.Specialties = *req.Specialties
	}
	if req.AvatarURL != nil {
		staff.AvatarURL = *req.AvatarURL
	}
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.db.Save(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}
