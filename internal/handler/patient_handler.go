package handler

import (
	"errors"
	"net/http"

	"patient-record-service/internal/models"
	"patient-record-service/internal/service"
	"patient-record-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// PatientRequest is the validated body for create and update. Malformed or
// incomplete payloads are rejected at the boundary with a 400.
type PatientRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	DOB          string `json:"dob" binding:"required,datetime=2006-01-02"`
	Gender       string `json:"gender" binding:"required"`
	Age          int    `json:"age" binding:"gte=0"`
	Condition    string `json:"condition" binding:"required"`
	DateAdmitted string `json:"dateAdmitted" binding:"required,datetime=2006-01-02"`
	Address      string `json:"address" binding:"required"`
	Status       string `json:"status" binding:"required,oneof=Regular PWD Senior"`
	Email        string `json:"email" binding:"required"`
}

func (r *PatientRequest) toModel() (*models.Patient, error) {
	dob, err := models.ParseDate(r.DOB)
	if err != nil {
		return nil, err
	}
	dateAdmitted, err := models.ParseDate(r.DateAdmitted)
	if err != nil {
		return nil, err
	}

	return &models.Patient{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		DOB:          dob,
		Gender:       r.Gender,
		Age:          r.Age,
		Condition:    r.Condition,
		DateAdmitted: dateAdmitted,
		Address:      r.Address,
		Status:       r.Status,
		Email:        r.Email,
	}, nil
}

// CreatePatient handles POST /api/patients
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient, err := req.toModel()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.patientService.CreatePatient(patient)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error creating patient")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetPatients handles GET /api/patients
func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients, err := h.patientService.ListPatients()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error fetching patients")
		return
	}

	if patients == nil {
		patients = []models.Patient{}
	}
	c.JSON(http.StatusOK, patients)
}

// UpdatePatient handles PUT /api/patients/:id
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id := c.Param("id")

	var req PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	fields, err := req.toModel()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.patientService.UpdatePatient(id, fields)
	if err != nil {
		if errors.Is(err, models.ErrPatientNotFound) {
			utils.NotFoundResponse(c, "Patient not found")
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Error updating patient")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePatient handles DELETE /api/patients/:id
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id := c.Param("id")

	if err := h.patientService.DeletePatient(id); err != nil {
		if errors.Is(err, models.ErrPatientNotFound) {
			utils.NotFoundResponse(c, "Patient not found")
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, "Error deleting patient")
		}
		return
	}

	utils.MessageResponse(c, "Patient deleted successfully")
}
