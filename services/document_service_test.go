package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/models"
	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/utils"
)

// fakeObjectStore keeps blobs in a map and can fail on demand.
type fakeObjectStore struct {
	blobs     map[string][]byte
	putErr    error
	deleteErr error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{blobs: map[string][]byte{}}
}

func (f *fakeObjectStore) Put(_ context.Context, key, _ string, body io.Reader) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, _ := io.ReadAll(body)
	f.blobs[key] = data
	return nil
}

func (f *fakeObjectStore) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.blobs, key)
	return nil
}

func (f *fakeObjectStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://blobs.example/" + key, nil
}

func TestDocumentUploadWritesBlobThenRow(t *testing.T) {
	db := newTestDB(t)
	store := newFakeObjectStore()
	svc := NewDocumentService(db, store)
	owner := models.User{Username: "alice", Email: "alice@x.com"}
	mustCreate(t, db, &owner)

	doc, err := svc.Upload(context.Background(), owner.ID, "alice",
		"lab-report.pdf", "application/pdf", "March labs",
		strings.NewReader("pdf-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc.StorageKey, "alice/"))
	assert.True(t, strings.HasSuffix(doc.StorageKey, "-lab-report.pdf"))
	assert.Equal(t, "lab-report.pdf", doc.OriginalFilename)
	assert.Contains(t, store.blobs, doc.StorageKey)

	var count int64
	require.NoError(t, db.Model(&models.Document{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDocumentUploadStorageFailureLeavesNoRow(t *testing.T) {
	db := newTestDB(t)
	store := newFakeObjectStore()
	store.putErr = errors.New("bucket unreachable")
	svc := NewDocumentService(db, store)
	owner := models.User{Username: "alice", Email: "alice@x.com"}
	mustCreate(t, db, &owner)

	_, err := svc.Upload(context.Background(), owner.ID, "alice",
		"scan.png", "image/png", "", strings.NewReader("png"))
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Document{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDocumentUploadWithoutStoreIsConfigurationError(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db, nil)
	owner := models.User{Username: "alice", Email: "alice@x.com"}
	mustCreate(t, db, &owner)

	_, err := svc.Upload(context.Background(), owner.ID, "alice",
		"scan.png", "image/png", "", strings.NewReader("png"))
	assert.ErrorIs(t, err, utils.ErrStorageNotConfigured)
}

func TestDocumentDeleteRemovesBlobAndRow(t *testing.T) {
	db := newTestDB(t)
	store := newFakeObjectStore()
	svc := NewDocumentService(db, store)
	owner := models.User{Username: "alice", Email: "alice@x.com"}
	mustCreate(t, db, &owner)

	doc, err := svc.Upload(context.Background(), owner.ID, "alice",
		"old.pdf", "application/pdf", "", strings.NewReader("bytes"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), owner.ID, doc.ID))

	assert.NotContains(t, store.blobs, doc.StorageKey)
	var count int64
	require.NoError(t, db.Model(&models.Document{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDocumentDeleteKeepsRowWhenBlobDeleteFails(t *testing.T) {
	db := newTestDB(t)
	store := newFakeObjectStore()
	svc := NewDocumentService(db, store)
	owner := models.User{Username: "alice", Email: "alice@x.com"}
	mustCreate(t, db, &owner)

	doc, err := svc.Upload(context.Background(), owner.ID, "alice",
		"keep.pdf", "application/pdf", "", strings.NewReader("bytes"))
	require.NoError(t, err)

	store.deleteErr = errors.New("access denied")
	require.Error(t, svc.Delete(context.Background(), owner.ID, doc.ID))

	var count int64
	require.NoError(t, db.Model(&models.Document{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDocumentDeleteVanishedRowIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db, newFakeObjectStore())
	owner := models.User{Username: "alice", Email: "alice@x.com"}
	mustCreate(t, db, &owner)

	assert.NoError(t, svc.Delete(context.Background(), owner.ID, 404))
}

func TestDocumentListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewDocumentService(db, newFakeObjectStore())
	owner := models.User{Username: "alice", Email: "alice@x.com"}
	mustCreate(t, db, &owner)

	older := models.Document{
		OriginalFilename: "a.pdf", StorageKey: "alice/1-a.pdf",
		UploadDate: time.Now().Add(-time.Hour), OwnerID: owner.ID,
	}
	newer := models.Document{
		OriginalFilename: "b.pdf", StorageKey: "alice/2-b.pdf",
		UploadDate: time.Now(), OwnerID: owner.ID,
	}
	mustCreate(t, db, &older)
	mustCreate(t, db, &newer)

	docs, err := svc.List(owner.ID)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b.pdf", docs[0].OriginalFilename)
}
