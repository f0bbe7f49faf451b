package services

import (
	"errors"
	"fmt"

	"github.com/Prabhat-16/Careerion-Backend/internal/models"
	"github.com/Prabhat-16/Careerion-Backend/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrSelfDelete guards admins from removing their own account.
	ErrSelfDelete = errors.New("You cannot delete your own account")
	// ErrRoleEscalation: only a superadmin may mint admin accounts.
	ErrRoleEscalation = errors.New("Only a superadmin can assign the admin role")
	ErrInvalidRole    = errors.New("Invalid role")
)

// AdminService implements the admin panel CRUD with the role rules applied
// before any store call.
type AdminService struct {
	users        repository.UserStore
	jobs         repository.JobStore
	companies    repository.CompanyStore
	applications repository.ApplicationStore
	log          *logrus.Logger
}

func NewAdminService(users repository.UserStore, jobs repository.JobStore, companies repository.CompanyStore, applications repository.ApplicationStore, log *logrus.Logger) *AdminService {
	return &AdminService{users: users, jobs: jobs, companies: companies, applications: applications, log: log}
}

// canAssign is the single capability check for role assignment: admins create
// plain users, superadmins create anything below themselves.
func canAssign(callerRole, targetRole string) error {
	switch targetRole {
	case models.RoleUser:
		return nil
	case models.RoleAdmin:
		if callerRole == models.RoleSuperAdmin {
			return nil
		}
		return ErrRoleEscalation
	case models.RoleSuperAdmin:
		return ErrRoleEscalation
	default:
		return ErrInvalidRole
	}
}

// ListUsers supports pagination, free-text search over name/email, and a role
// filter.
func (s *AdminService) ListUsers(p repository.ListParams) ([]models.User, int64, error) {
	return s.users.List(p)
}

func (s *AdminService) GetUser(id uint) (*models.User, error) {
	return s.users.FindByID(id)
}

// CreateUser mints an account on behalf of an admin. Role defaults to user.
func (s *AdminService) CreateUser(callerRole, name, email, password, role string) (*models.User, error) {
	if role == "" {
		role = models.RoleUser
	}
	if err := canAssign(callerRole, role); err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{Name: name, Email: email, Password: string(hashed), Role: role}
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"email": email, "role": role}).Info("admin created user")
	return user, nil
}

// UpdateUser applies name/email/role changes. Role changes go through the
// same capability check as creation.
func (s *AdminService) UpdateUser(callerRole string, id uint, name, email, role *string) (*models.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if role != nil && *role != user.Role {
		if err := canAssign(callerRole, *role); err != nil {
			return nil, err
		}
		user.Role = *role
	}
	setString(&user.Name, name)
	setString(&user.Email, email)
	if err := s.users.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account, rejecting self-deletion.
func (s *AdminService) DeleteUser(callerID, id uint) error {
	if callerID == id {
		return ErrSelfDelete
	}
	return s.users.Delete(id)
}

func (s *AdminService) ListJobs(p repository.ListParams) ([]models.Job, int64, error) {
	return s.jobs.List(p)
}

func (s *AdminService) GetJob(id uint) (*models.Job, error) { return s.jobs.FindByID(id) }

func (s *AdminService) CreateJob(job *models.Job) error {
	if job.Status == "" {
		job.Status = models.JobStatusActive
	}
	return s.jobs.Create(job)
}

func (s *AdminService) UpdateJob(id uint, title, company, location, status *string) (*models.Job, error) {
	job, err := s.jobs.FindByID(id)
	if err != nil {
		return nil, err
	}
	setString(&job.Title, title)
	setString(&job.Company, company)
	setString(&job.Location, location)
	setString(&job.Status, status)
	if err := s.jobs.Update(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *AdminService) DeleteJob(id uint) error { return s.jobs.Delete(id) }

func (s *AdminService) ListCompanies(p repository.ListParams) ([]models.Company, int64, error) {
	return s.companies.List(p)
}

func (s *AdminService) GetCompany(id uint) (*models.Company, error) {
	return s.companies.FindByID(id)
}

func (s *AdminService) CreateCompany(company *models.Company) error {
	if company.Status == "" {
		company.Status = "active"
	}
	return s.companies.Create(company)
}

func (s *AdminService) UpdateCompany(id uint, name, industry, size, status *string) (*models.Company, error) {
	company, err := s.companies.FindByID(id)
	if err != nil {
		return nil, err
	}
	setString(&company.Name, name)
	setString(&company.Industry, industry)
	setString(&company.Size, size)
	setString(&company.Status, status)
	if err := s.companies.Update(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *AdminService) DeleteCompany(id uint) error { return s.companies.Delete(id) }

func (s *AdminService) ListApplications(p repository.ListParams) ([]models.Application, int64, error) {
	return s.applications.List(p)
}

func (s *AdminService) GetApplication(id uint) (*models.Application, error) {
	return s.applications.FindByID(id)
}

func (s *AdminService) UpdateApplication(id uint, status *string) (*models.Application, error) {
	app, err := s.applications.FindByID(id)
	if err != nil {
		return nil, err
	}
	setString(&app.Status, status)
	if err := s.applications.Update(app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *AdminService) DeleteApplication(id uint) error { return s.applications.Delete(id) }
