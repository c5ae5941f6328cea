package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/clinicsvc/domain"
)

// AuthHandlers handles doctor authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	MedicalID      string `json:"medicalId" binding:"required"`
	Hospital       string `json:"hospital" binding:"required"`
	HospitalPhone  string `json:"hospitalPhone" binding:"required"`
	Specialization string `json:"specialization"`
}

// LoginRequest represents login request. identifier is an email or a medical ID.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password"`
}

// Register handles doctor registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &domain.DoctorRegistration{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		MedicalID:      req.MedicalID,
		Hospital:       req.Hospital,
		HospitalPhone:  req.HospitalPhone,
		Specialization: req.Specialization,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login handles doctor login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me returns the authenticated doctor's profile
func (h *AuthHandlers) Me(c *gin.Context) {
	profile, err := h.authSvc.CurrentDoctor(c.Request.Context(), bearer(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
