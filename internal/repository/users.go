package repository

import (
	"errors"
	"strings"

	"github.com/Prabhat-16/Careerion-Backend/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup target does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when a create/update would violate the email
// uniqueness constraint.
var ErrDuplicateEmail = errors.New("email already in use")

// ListParams are the common admin-list query parameters.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Role   string
}

func (p ListParams) offsetLimit() (int, int) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return (page - 1) * limit, limit
}

// UserStore is the persistence contract for user records. The Credential
// Store owns these exclusively; nothing else caches them.
type UserStore interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(p ListParams) ([]models.User, int64, error)
}

type gormUserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) Create(user *models.User) error {
	err := s.db.Create(user).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *gormUserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) Update(user *models.User) error {
	err := s.db.Save(user).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (s *gormUserStore) Delete(id uint) error {
	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormUserStore) List(p ListParams) ([]models.User, int64, error) {
	q := s.db.Model(&models.User{})
	if p.Search != "" {
		like := "%" + p.Search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ?", like, like)
	}
	if p.Role != "" {
		q = q.Where("role = ?", p.Role)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset, limit := p.offsetLimit()
	var users []models.User
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// gorm's postgres driver does not always translate 23505
	return strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "23505")
}
