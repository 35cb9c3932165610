package client

import (
	"context"
	"errors"
	"strings"

	"patient-record-service/internal/models"
)

// ErrValidation is returned by Submit when a required field is empty. No
// network call is made in that case.
var ErrValidation = errors.New("all fields are required")

// recordWriter is the part of the API client the form controller depends on.
type recordWriter interface {
	CreatePatient(ctx context.Context, fields PatientFields) (*models.Patient, error)
	UpdatePatient(ctx context.Context, key string, fields PatientFields) (*models.Patient, error)
	DeletePatient(ctx context.Context, key string) error
}

// FormController owns the transient field values for one add-or-edit session.
// Add mode and edit mode are mutually exclusive, selected by the presence of
// the editing key.
type FormController struct {
	Fields PatientFields

	api      recordWriter
	sync     *SyncState
	notifier *Notifier

	editingKey    string
	open          bool
	pendingDelete *models.Patient
}

func NewFormController(api recordWriter, sync *SyncState, notifier *Notifier) *FormController {
	return &FormController{
		api:      api,
		sync:     sync,
		notifier: notifier,
	}
}

// IsOpen reports whether the form is showing.
func (f *FormController) IsOpen() bool {
	return f.open
}

// IsEditing reports whether the form is in edit mode.
func (f *FormController) IsEditing() bool {
	return f.editingKey != ""
}

// BeginAdd opens the form with defaults for a new record: admission date is
// today, status is Regular.
func (f *FormController) BeginAdd() {
	f.resetFields()
	f.editingKey = ""
	f.open = true
}

// BeginEdit opens the form populated from an existing record.
func (f *FormController) BeginEdit(patient models.Patient) {
	status := patient.Status
	if status == "" {
		status = models.StatusRegular
	}

	f.Fields = PatientFields{
		FirstName:    patient.FirstName,
		LastName:     patient.LastName,
		DOB:          patient.DOB.String(),
		Gender:       patient.Gender,
		Age:          patient.Age,
		Condition:    patient.Condition,
		DateAdmitted: patient.DateAdmitted.String(),
		Address:      patient.Address,
		Status:       status,
		Email:        patient.Email,
	}
	f.editingKey = patient.ID
	f.open = true
}

// Submit validates the field values and dispatches a create or update,
// depending on whether an editing key is present. On success the form is
// cleared and the working copy fully refreshed.
func (f *FormController) Submit(ctx context.Context) error {
	if !f.validate() {
		f.notifier.Error("All fields are required!")
		return ErrValidation
	}

	var err error
	if f.editingKey != "" {
		_, err = f.api.UpdatePatient(ctx, f.editingKey, f.Fields)
	} else {
		_, err = f.api.CreatePatient(ctx, f.Fields)
	}
	if err != nil {
		f.notifier.Error("Failed to save patient!")
		return err
	}

	f.resetFields()
	f.editingKey = ""
	f.open = false

	return f.sync.Refresh(ctx)
}

// Cancel discards in-progress edits and closes the form.
func (f *FormController) Cancel() {
	f.resetFields()
	f.editingKey = ""
	f.open = false
}

// RequestDelete records the delete target pending user confirmation.
func (f *FormController) RequestDelete(patient models.Patient) {
	p := patient
	f.pendingDelete = &p
}

// PendingDelete returns the record awaiting delete confirmation, if any.
func (f *FormController) PendingDelete() *models.Patient {
	return f.pendingDelete
}

// ConfirmDelete deletes the pending record. On success the record is removed
// from the working copy locally, without a full refetch.
func (f *FormController) ConfirmDelete(ctx context.Context) error {
	if f.pendingDelete == nil {
		return nil
	}
	key := f.pendingDelete.ID

	if err := f.api.DeletePatient(ctx, key); err != nil {
		f.notifier.Error("Error deleting patient!")
		return err
	}

	f.sync.RemoveLocal(key)
	f.pendingDelete = nil
	f.notifier.Success("Patient deleted successfully.")
	return nil
}

// CancelDelete dismisses the confirmation without deleting.
func (f *FormController) CancelDelete() {
	f.pendingDelete = nil
}

func (f *FormController) validate() bool {
	required := []string{
		f.Fields.FirstName,
		f.Fields.LastName,
		f.Fields.DOB,
		f.Fields.Gender,
		f.Fields.Condition,
		f.Fields.Address,
	}
	for _, value := range required {
		if strings.TrimSpace(value) == "" {
			return false
		}
	}
	return true
}

func (f *FormController) resetFields() {
	f.Fields = PatientFields{
		DateAdmitted: models.Today().String(),
		Status:       models.StatusRegular,
	}
}
