package handlers

import (
	"errors"
	"net/http"

	"github.com/Prabhat-16/Careerion-Backend/internal/dtos"
	"github.com/Prabhat-16/Careerion-Backend/internal/middleware"
	"github.com/Prabhat-16/Careerion-Backend/internal/services"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GetProfile is GET /api/user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	user, err := h.users.Get(claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":         user.Profile,
		"profileComplete": user.ProfileComplete,
	})
}

// UpdateProfile is POST /api/user/profile. Only the allow-listed profile
// fields in the DTO are ever applied.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	var req dtos.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile payload: " + err.Error()})
		return
	}

	user, err := h.users.UpdateProfile(claims.UserID, services.ProfileUpdate{
		EducationLevel:  req.EducationLevel,
		FieldOfStudy:    req.FieldOfStudy,
		Institution:     req.Institution,
		CompletionYear:  req.CompletionYear,
		CurrentStatus:   req.CurrentStatus,
		WorkExperience:  req.WorkExperience,
		Skills:          req.Skills,
		Interests:       req.Interests,
		CareerGoals:     req.CareerGoals,
		WorkEnvironment: req.WorkEnvironment,
		Location:        req.Location,
		SalaryRange:     req.SalaryRange,
		WillingRelocate: req.WillingRelocate,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Profile updated successfully",
		"profile":         user.Profile,
		"profileComplete": user.ProfileComplete,
	})
}
