package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/services"
)

type VitalController struct {
	Svc *services.VitalService
}

func NewVitalController(svc *services.VitalService) *VitalController {
	return &VitalController{Svc: svc}
}

// GET /vitals?type=Blood+Pressure
func (vc *VitalController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	vitals, err := vc.Svc.List(uid, c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, vitals)
}

// POST /vitals
func (vc *VitalController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.VitalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	vital, err := vc.Svc.Create(uid, input)
	if errors.Is(err, services.ErrInvalidVitalType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, vital)
}

// DELETE /vitals/:id
func (vc *VitalController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := vc.Svc.Delete(uid, pathID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vital deleted"})
}
