package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/models"
	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/utils"
)

type DocumentService struct {
	db    *gorm.DB
	store utils.ObjectStore
}

func NewDocumentService(db *gorm.DB, store utils.ObjectStore) *DocumentService {
	return &DocumentService{db: db, store: store}
}

// Upload streams the file to object storage under the generated key, then
// records the metadata row. A storage failure aborts before the insert so no
// row ever points at a blob that was never written. The two artifacts are
// still not deleted atomically on the way out; see Delete.
func (s *DocumentService) Upload(ctx context.Context, ownerID uint, username, filename, contentType, description string, body io.Reader) (*models.Document, error) {
	if s.store == nil {
		return nil, utils.ErrStorageNotConfigured
	}

	key := utils.StorageKey(username, filename)
	if err := s.store.Put(ctx, key, contentType, body); err != nil {
		return nil, err
	}

	doc := models.Document{
		OriginalFilename: filename,
		StorageKey:       key,
		Description:      description,
		OwnerID:          ownerID,
	}
	if err := s.db.Create(&doc).Error; err != nil {
		// orphaned blob: the key is logged so an operator can reap it
		log.Printf("document metadata insert failed, blob %s is orphaned: %v", key, err)
		return nil, err
	}
	return &doc, nil
}

func (s *DocumentService) List(ownerID uint) ([]models.Document, error) {
	var docs []models.Document
	err := s.db.
		Where("owner_id = ?", ownerID).
		Order("upload_date desc").
		Find(&docs).Error
	return docs, err
}

// DownloadURL returns a presigned GET link valid for one hour.
func (s *DocumentService) DownloadURL(ctx context.Context, ownerID, id uint) (string, error) {
	if s.store == nil {
		return "", utils.ErrStorageNotConfigured
	}

	var doc models.Document
	if err := s.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&doc).Error; err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, doc.StorageKey, time.Hour)
}

// Delete removes the blob first, then the metadata row. If the blob delete
// fails the row is kept so the document stays reachable; if the row was
// already gone the call is a no-op.
func (s *DocumentService) Delete(ctx context.Context, ownerID, id uint) error {
	var doc models.Document
	err := s.db.Where("id = ? AND owner_id = ?", id, ownerID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if s.store != nil {
		if err := s.store.Delete(ctx, doc.StorageKey); err != nil {
			return fmt.Errorf("blob delete failed for %s: %w", doc.StorageKey, err)
		}
	}
	return s.db.Delete(&doc).Error
}
