package repository

import (
	"errors"

	"github.com/Prabhat-16/Careerion-Backend/internal/models"
	"gorm.io/gorm"
)

// JobStore persists job postings managed through the admin panel.
type JobStore interface {
	Create(job *models.Job) error
	FindByID(id uint) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id uint) error
	List(p ListParams) ([]models.Job, int64, error)
}

// CompanyStore persists company records managed through the admin panel.
type CompanyStore interface {
	Create(company *models.Company) error
	FindByID(id uint) (*models.Company, error)
	Update(company *models.Company) error
	Delete(id uint) error
	List(p ListParams) ([]models.Company, int64, error)
}

// ApplicationStore reads and mutates job applications. There is no public
// creation path; rows come from seeding or admin creation.
type ApplicationStore interface {
	Create(app *models.Application) error
	FindByID(id uint) (*models.Application, error)
	Update(app *models.Application) error
	Delete(id uint) error
	List(p ListParams) ([]models.Application, int64, error)
}

type gormJobStore struct{ db *gorm.DB }

func NewJobStore(db *gorm.DB) JobStore { return &gormJobStore{db: db} }

func (s *gormJobStore) Create(job *models.Job) error { return s.db.Create(job).Error }

func (s *gormJobStore) FindByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.db.First(&job, id).Error; err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (s *gormJobStore) Update(job *models.Job) error { return s.db.Save(job).Error }

func (s *gormJobStore) Delete(id uint) error {
	res := s.db.Delete(&models.Job{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormJobStore) List(p ListParams) ([]models.Job, int64, error) {
	q := s.db.Model(&models.Job{})
	if p.Search != "" {
		like := "%" + p.Search + "%"
		q = q.Where("title ILIKE ? OR company ILIKE ? OR location ILIKE ?", like, like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset, limit := p.offsetLimit()
	var jobs []models.Job
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

type gormCompanyStore struct{ db *gorm.DB }

func NewCompanyStore(db *gorm.DB) CompanyStore { return &gormCompanyStore{db: db} }

func (s *gormCompanyStore) Create(company *models.Company) error {
	return s.db.Create(company).Error
}

func (s *gormCompanyStore) FindByID(id uint) (*models.Company, error) {
	var company models.Company
	if err := s.db.First(&company, id).Error; err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (s *gormCompanyStore) Update(company *models.Company) error { return s.db.Save(company).Error }

func (s *gormCompanyStore) Delete(id uint) error {
	res := s.db.Delete(&models.Company{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormCompanyStore) List(p ListParams) ([]models.Company, int64, error) {
	q := s.db.Model(&models.Company{})
	if p.Search != "" {
		like := "%" + p.Search + "%"
		q = q.Where("name ILIKE ? OR industry ILIKE ?", like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset, limit := p.offsetLimit()
	var companies []models.Company
	if err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&companies).Error; err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

type gormApplicationStore struct{ db *gorm.DB }

func NewApplicationStore(db *gorm.DB) ApplicationStore { return &gormApplicationStore{db: db} }

func (s *gormApplicationStore) Create(app *models.Application) error {
	return s.db.Create(app).Error
}

func (s *gormApplicationStore) FindByID(id uint) (*models.Application, error) {
	var app models.Application
	if err := s.db.Preload("Job").Preload("User").First(&app, id).Error; err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (s *gormApplicationStore) Update(app *models.Application) error { return s.db.Save(app).Error }

func (s *gormApplicationStore) Delete(id uint) error {
	res := s.db.Delete(&models.Application{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormApplicationStore) List(p ListParams) ([]models.Application, int64, error) {
	q := s.db.Model(&models.Application{})
	if p.Search != "" {
		like := "%" + p.Search + "%"
		q = q.Joins("JOIN jobs ON jobs.id = applications.job_id").
			Where("jobs.title ILIKE ? OR jobs.company ILIKE ?", like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset, limit := p.offsetLimit()
	var apps []models.Application
	if err := q.Preload("Job").Preload("User").
		Order("applications.created_at DESC").Offset(offset).Limit(limit).Find(&apps).Error; err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
