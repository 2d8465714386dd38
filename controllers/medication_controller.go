package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/services"
)

type MedicationController struct {
	Svc *services.MedicationService
}

func NewMedicationController(svc *services.MedicationService) *MedicationController {
	return &MedicationController{Svc: svc}
}

// GET /medications
func (mc *MedicationController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	meds, err := mc.Svc.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meds)
}

// POST /medications
func (mc *MedicationController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	med, err := mc.Svc.Create(uid, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, med)
}

// PUT /medications/:id
func (mc *MedicationController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id := pathID(c)

	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	med, err := mc.Svc.Update(uid, id, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "medication not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, med)
}

// DELETE /medications/:id
func (mc *MedicationController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := mc.Svc.Delete(uid, pathID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "medication deleted"})
}

func pathID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id)
}
