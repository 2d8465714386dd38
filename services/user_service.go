package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/models"
)

// ErrIdentityRace marks a duplicate-key collision between two concurrent
// first logins for the same username. The caller retries the lookup once.
var ErrIdentityRace = errors.New("concurrent first-login detected")

var ErrUsernameRequired = errors.New("username required")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ResolveIdentity maps an externally-authenticated username to the internal
// user id, creating the row on first sight. Name and email are only consulted
// when the row is created; later calls never modify the record.
func (s *UserService) ResolveIdentity(username, name, email string) (uint, error) {
	if username == "" {
		return 0, ErrUsernameRequired
	}
	id, err := s.findOrCreate(username, name, email)
	if errors.Is(err, ErrIdentityRace) {
		return s.findOrCreate(username, name, email)
	}
	return id, err
}

// findOrCreate is a single atomic upsert: a conflict-do-nothing insert
// followed by a re-select, so two racing first logins converge on one row.
func (s *UserService) findOrCreate(username, name, email string) (uint, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return user.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	user = models.User{Username: username, Name: name, Email: email}
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(&user)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return 0, ErrIdentityRace
		}
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		// another session won the insert; read its row
		var existing models.User
		if err := s.db.Where("username = ?", username).First(&existing).Error; err != nil {
			return 0, ErrIdentityRace
		}
		return existing.ID, nil
	}
	return user.ID, nil
}

// GetUser returns the full identity record.
func (s *UserService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
