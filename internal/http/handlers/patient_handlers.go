package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you/clinicsvc/domain"
)

// PatientHandlers handles patient record HTTP requests
type PatientHandlers struct {
	patientSvc domain.PatientService
}

// NewPatientHandlers creates new patient handlers
func NewPatientHandlers(patientSvc domain.PatientService) *PatientHandlers {
	return &PatientHandlers{patientSvc: patientSvc}
}

// Create stores a new patient for the caller
func (h *PatientHandlers) Create(c *gin.Context) {
	var fields domain.PatientFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.patientSvc.Create(c.Request.Context(), bearer(c), &fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// List returns the caller's patients, optionally filtered by ?riskLevel=
func (h *PatientHandlers) List(c *gin.Context) {
	var (
		patients []*domain.Patient
		err      error
	)
	if level := c.Query("riskLevel"); level != "" {
		patients, err = h.patientSvc.ListByRiskLevel(c.Request.Context(), bearer(c), level)
	} else {
		patients, err = h.patientSvc.ListForCaller(c.Request.Context(), bearer(c))
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if patients == nil {
		patients = []*domain.Patient{}
	}

	c.JSON(http.StatusOK, patients)
}

// Get returns one of the caller's patients
func (h *PatientHandlers) Get(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	patient, err := h.patientSvc.GetOne(c.Request.Context(), bearer(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, patient)
}

// Update replaces every mutable field of one of the caller's patients
func (h *PatientHandlers) Update(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	var fields domain.PatientFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.patientSvc.Update(c.Request.Context(), bearer(c), id, &fields)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, patient)
}

// Delete removes one of the caller's patients
func (h *PatientHandlers) Delete(c *gin.Context) {
	id, ok := patientID(c)
	if !ok {
		return
	}

	if err := h.patientSvc.Delete(c.Request.Context(), bearer(c), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Patient deleted successfully"})
}

func patientID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return 0, false
	}
	return uint(id), true
}
