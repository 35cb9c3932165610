package repository

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"patient-record-service/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxIDAttempts bounds how many times patient ID generation is retried when
// the generated ID collides with an existing one.
const maxIDAttempts = 5

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// generatePatientID draws a 5-digit number in [10000, 99999] and prefixes it.
// Uniqueness is enforced by the unique index on patient_id, not by the draw.
func generatePatientID() string {
	return fmt.Sprintf("PID-%05d", 10000+rand.IntN(90000))
}

// CreatePatient inserts a new patient record, assigning the internal key and
// the human-readable patient ID. On a patient ID collision the insert is
// retried with a fresh ID.
func (r *PatientRepository) CreatePatient(patient *models.Patient) error {
	patient.ID = uuid.NewString()

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		patient.PatientID = generatePatientID()
		err := r.db.Create(patient).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return fmt.Errorf("failed to assign a unique patient ID after %d attempts", maxIDAttempts)
}

// GetAllPatients retrieves every patient record in insertion order.
func (r *PatientRepository) GetAllPatients() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("created_at ASC, id ASC").Find(&patients).Error
	return patients, err
}

// GetPatientByID retrieves a patient by internal key.
func (r *PatientRepository) GetPatientByID(id string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPatientNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// UpdatePatient replaces all mutable fields of the record addressed by the
// internal key. The internal key and patient ID are never touched.
func (r *PatientRepository) UpdatePatient(id string, fields *models.Patient) (*models.Patient, error) {
	existing, err := r.GetPatientByID(id)
	if err != nil {
		return nil, err
	}

	existing.FirstName = fields.FirstName
	existing.LastName = fields.LastName
	existing.DOB = fields.DOB
	existing.Gender = fields.Gender
	existing.Age = fields.Age
	existing.Condition = fields.Condition
	existing.DateAdmitted = fields.DateAdmitted
	existing.Address = fields.Address
	existing.Status = fields.Status
	existing.Email = fields.Email

	if err := r.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// DeletePatient hard deletes the record addressed by the internal key.
func (r *PatientRepository) DeletePatient(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Patient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrPatientNotFound
	}
	return nil
}
