package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Role values for User.Role. Creating an admin account requires a
// superadmin caller; see services.AdminService.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Job lifecycle statuses.
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

// Application statuses.
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Profile holds the career background a user fills in after signup. It is
// embedded in User so the whole thing lives in one row.
type Profile struct {
	EducationLevel  string         `json:"educationLevel"`
	FieldOfStudy    string         `json:"fieldOfStudy"`
	Institution     string         `json:"institution"`
	CompletionYear  string         `json:"completionYear"`
	CurrentStatus   string         `json:"currentStatus"`
	WorkExperience  string         `json:"workExperience"`
	Skills          pq.StringArray `gorm:"type:text[]" json:"skills"`
	Interests       pq.StringArray `gorm:"type:text[]" json:"interests"`
	CareerGoals     string         `json:"careerGoals"`
	WorkEnvironment string         `json:"preferredWorkEnvironment"`
	Location        string         `json:"preferredLocation"`
	SalaryRange     string         `json:"salaryExpectation"`
	WillingRelocate bool           `json:"willingToRelocate"`
}

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:'user'" json:"role"`

	AvatarURL string `json:"avatarUrl,omitempty"`

	Profile         Profile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	ProfileComplete bool    `json:"profileComplete"`

	// Reset-token columns exist for parity with the schema; no reset
	// endpoints are exposed yet.
	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
}

// HasProfile reports whether the minimum profile fields are filled in.
// Stored on the row as ProfileComplete so list endpoints can filter on it.
func (u *User) HasProfile() bool {
	p := u.Profile
	return p.EducationLevel != "" && p.CurrentStatus != "" && len(p.Skills) > 0 && p.CareerGoals != ""
}

type Job struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title    string `gorm:"not null" json:"title"`
	Company  string `gorm:"not null" json:"company"`
	Location string `json:"location"`
	Status   string `gorm:"default:'active'" json:"status"`
}

type Company struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Industry string `json:"industry"`
	Size     string `gorm:"default:'startup'" json:"size"`
	Status   string `gorm:"default:'active'" json:"status"`
}

type Application struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	JobID  uint `gorm:"not null" json:"job_id"`
	Job    Job  `json:"job,omitempty"`
	UserID uint `gorm:"not null" json:"user_id"`
	User   User `json:"user,omitempty"`

	Status    string    `gorm:"default:'pending'" json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}
