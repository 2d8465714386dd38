package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/services"
)

type AppointmentController struct {
	Svc *services.AppointmentService
}

func NewAppointmentController(svc *services.AppointmentService) *AppointmentController {
	return &AppointmentController{Svc: svc}
}

// GET /appointments
func (ac *AppointmentController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	appts, err := ac.Svc.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GET /appointments/upcoming
func (ac *AppointmentController) Upcoming(c *gin.Context) {
	uid := c.GetUint("userID")
	appts, err := ac.Svc.Upcoming(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// POST /appointments
func (ac *AppointmentController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	appt, err := ac.Svc.Create(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// PUT /appointments/:id
func (ac *AppointmentController) Update(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	appt, err := ac.Svc.Update(uid, pathID(c), input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DELETE /appointments/:id
func (ac *AppointmentController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := ac.Svc.Delete(uid, pathID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}
