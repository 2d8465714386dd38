package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/services"
	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/utils"
)

type DocumentController struct {
	Svc *services.DocumentService
}

func NewDocumentController(svc *services.DocumentService) *DocumentController {
	return &DocumentController{Svc: svc}
}

// GET /documents
func (dc *DocumentController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	docs, err := dc.Svc.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// POST /documents (multipart: file, description)
func (dc *DocumentController) Upload(c *gin.Context) {
	uid := c.GetUint("userID")
	username := c.GetString("username")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}
	defer f.Close()

	doc, err := dc.Svc.Upload(
		c.Request.Context(),
		uid,
		username,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		c.PostForm("description"),
		f,
	)
	if errors.Is(err, utils.ErrStorageNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// GET /documents/:id/download
func (dc *DocumentController) Download(c *gin.Context) {
	uid := c.GetUint("userID")

	url, err := dc.Svc.DownloadURL(c.Request.Context(), uid, pathID(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	if errors.Is(err, utils.ErrStorageNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DELETE /documents/:id
func (dc *DocumentController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	if err := dc.Svc.Delete(c.Request.Context(), uid, pathID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "document deleted"})
}
