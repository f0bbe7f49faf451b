package database

import (
	"time"

	"github.com/Prabhat-16/Careerion-Backend/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed fills empty tables with sample data and makes sure a superadmin
// account exists. Idempotent: it only inserts when a table has no rows, so
// restarts are safe.
func Seed(db *gorm.DB, log *logrus.Logger) {
	seedSuperAdmin(db, log)

	var companyCount int64
	db.Model(&models.Company{}).Count(&companyCount)
	if companyCount == 0 {
		companies := []models.Company{
			{Name: "TechNova Labs", Industry: "Software", Size: "medium", Status: "active"},
			{Name: "GreenGrid Energy", Industry: "Renewable Energy", Size: "large", Status: "active"},
			{Name: "Brightpath Learning", Industry: "EdTech", Size: "startup", Status: "active"},
			{Name: "Northstar Finance", Industry: "FinTech", Size: "small", Status: "inactive"},
		}
		if err := db.Create(&companies).Error; err != nil {
			log.WithError(err).Warn("company seeding failed")
		}
	}

	var jobCount int64
	db.Model(&models.Job{}).Count(&jobCount)
	if jobCount == 0 {
		jobs := []models.Job{
			{Title: "Backend Engineer", Company: "TechNova Labs", Location: "Bengaluru", Status: models.JobStatusActive},
			{Title: "Data Analyst", Company: "Northstar Finance", Location: "Mumbai", Status: models.JobStatusActive},
			{Title: "Solar Project Manager", Company: "GreenGrid Energy", Location: "Remote", Status: models.JobStatusDraft},
			{Title: "Curriculum Designer", Company: "Brightpath Learning", Location: "Pune", Status: models.JobStatusClosed},
		}
		if err := db.Create(&jobs).Error; err != nil {
			log.WithError(err).Warn("job seeding failed")
		}
	}

	var appCount int64
	db.Model(&models.Application{}).Count(&appCount)
	if appCount == 0 {
		var job models.Job
		var user models.User
		if db.First(&job).Error == nil && db.First(&user).Error == nil {
			app := models.Application{
				JobID:     job.ID,
				UserID:    user.ID,
				Status:    models.ApplicationPending,
				AppliedAt: time.Now(),
			}
			if err := db.Create(&app).Error; err != nil {
				log.WithError(err).Warn("application seeding failed")
			}
		}
	}
}

func seedSuperAdmin(db *gorm.DB, log *logrus.Logger) {
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleSuperAdmin).Count(&count)
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Warn("superadmin seeding failed")
		return
	}
	admin := models.User{
		Name:     "Super Admin",
		Email:    "admin@careerion.local",
		Password: string(hashed),
		Role:     models.RoleSuperAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.WithError(err).Warn("superadmin seeding failed")
		return
	}
	log.Warn("seeded default superadmin admin@careerion.local; change its password")
}
