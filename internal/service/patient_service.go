package service

import (
	"patient-record-service/internal/models"
)

// PatientRepository is the storage seam the patient service operates over.
type PatientRepository interface {
	CreatePatient(patient *models.Patient) error
	GetAllPatients() ([]models.Patient, error)
	UpdatePatient(id string, fields *models.Patient) (*models.Patient, error)
	DeletePatient(id string) error
}

type PatientService struct {
	patientRepo PatientRepository
}

func NewPatientService(patientRepo PatientRepository) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
	}
}

// CreatePatient stores a new record. The store assigns the internal key and
// the patient ID; a retried create produces a duplicate record with a new ID.
func (s *PatientService) CreatePatient(patient *models.Patient) (*models.Patient, error) {
	if err := s.patientRepo.CreatePatient(patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// ListPatients returns all records in store order. Filtering and sorting are
// the caller's concern.
func (s *PatientService) ListPatients() ([]models.Patient, error) {
	return s.patientRepo.GetAllPatients()
}

// UpdatePatient replaces all mutable fields of the addressed record. This is
// full-replace, not merge: omitted fields arrive as their zero values.
func (s *PatientService) UpdatePatient(id string, fields *models.Patient) (*models.Patient, error) {
	return s.patientRepo.UpdatePatient(id, fields)
}

// DeletePatient hard deletes the addressed record.
func (s *PatientService) DeletePatient(id string) error {
	return s.patientRepo.DeletePatient(id)
}
