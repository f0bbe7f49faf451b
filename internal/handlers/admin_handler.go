package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Prabhat-16/Careerion-Backend/internal/dtos"
	"github.com/Prabhat-16/Careerion-Backend/internal/middleware"
	"github.com/Prabhat-16/Careerion-Backend/internal/models"
	"github.com/Prabhat-16/Careerion-Backend/internal/repository"
	"github.com/Prabhat-16/Careerion-Backend/internal/services"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func listParams(c *gin.Context) repository.ListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return repository.ListParams{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Role:   c.Query("role"),
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func listEnvelope(items any, total int64, p repository.ListParams) gin.H {
	page := p.Page
	if page < 1 {
		page = 1
	}
	return gin.H{"items": items, "total": total, "page": page}
}

// adminError maps service/store errors onto the HTTP taxonomy.
func adminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, services.ErrSelfDelete),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrEmailExists),
		errors.Is(err, services.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrRoleEscalation):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}

// --- users ---

func (h *AdminHandler) ListUsers(c *gin.Context) {
	p := listParams(c)
	users, total, err := h.admin.ListUsers(p)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope(users, total, p))
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.admin.GetUser(id)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var req dtos.AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and password are required"})
		return
	}
	user, err := h.admin.CreateUser(claims.Role, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	user, err := h.admin.UpdateUser(claims.Role, id, req.Name, req.Email, req.Role)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteUser(claims.UserID, id); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// --- jobs ---

func (h *AdminHandler) ListJobs(c *gin.Context) {
	p := listParams(c)
	jobs, total, err := h.admin.ListJobs(p)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope(jobs, total, p))
}

func (h *AdminHandler) GetJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	job, err := h.admin.GetJob(id)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *AdminHandler) CreateJob(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and company are required"})
		return
	}
	job := &models.Job{Title: req.Title, Company: req.Company, Location: req.Location, Status: req.Status}
	if err := h.admin.CreateJob(job); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *AdminHandler) UpdateJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	job, err := h.admin.UpdateJob(id, req.Title, req.Company, req.Location, req.Status)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteJob(id); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// --- companies ---

func (h *AdminHandler) ListCompanies(c *gin.Context) {
	p := listParams(c)
	companies, total, err := h.admin.ListCompanies(p)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope(companies, total, p))
}

func (h *AdminHandler) GetCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := h.admin.GetCompany(id)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *AdminHandler) CreateCompany(c *gin.Context) {
	var req dtos.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	company := &models.Company{Name: req.Name, Industry: req.Industry, Size: req.Size, Status: req.Status}
	if company.Size == "" {
		company.Size = "startup"
	}
	if err := h.admin.CreateCompany(company); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (h *AdminHandler) UpdateCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	company, err := h.admin.UpdateCompany(id, req.Name, req.Industry, req.Size, req.Status)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *AdminHandler) DeleteCompany(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteCompany(id); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}

// --- applications ---

func (h *AdminHandler) ListApplications(c *gin.Context) {
	p := listParams(c)
	apps, total, err := h.admin.ListApplications(p)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, listEnvelope(apps, total, p))
}

func (h *AdminHandler) GetApplication(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	app, err := h.admin.GetApplication(id)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *AdminHandler) UpdateApplication(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dtos.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	app, err := h.admin.UpdateApplication(id, req.Status)
	if err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *AdminHandler) DeleteApplication(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.admin.DeleteApplication(id); err != nil {
		adminError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}
