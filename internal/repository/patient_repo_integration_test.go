package repository

import (
	"os"
	"testing"
	"time"

	"patient-record-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to the database named by TEST_DB_DSN, skipping the test
// when the variable is unset so the suite stays runnable without a database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping integration test")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Patient{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM patients")
	})

	return db
}

func samplePatient(firstName, lastName string) *models.Patient {
	return &models.Patient{
		FirstName:    firstName,
		LastName:     lastName,
		DOB:          models.NewDate(1990, 1, 1),
		Gender:       "Female",
		Age:          34,
		Condition:    "Flu",
		DateAdmitted: models.NewDate(2024, 1, 1),
		Address:      "1 Main St",
		Status:       models.StatusRegular,
		Email:        "a@x.com",
	}
}

func TestPatientRepository_CreateAssignsIdentifiers(t *testing.T) {
	repo := NewPatientRepo(openTestDB(t))

	patient := samplePatient("Ann", "Lee")
	require.NoError(t, repo.CreatePatient(patient))

	assert.NotEmpty(t, patient.ID)
	assert.Regexp(t, patientIDPattern, patient.PatientID)

	all, err := repo.GetAllPatients()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Ann", all[0].FirstName)
	assert.Equal(t, patient.PatientID, all[0].PatientID)
}

func TestPatientRepository_UpdateKeepsPatientID(t *testing.T) {
	repo := NewPatientRepo(openTestDB(t))

	patient := samplePatient("Ann", "Lee")
	require.NoError(t, repo.CreatePatient(patient))
	originalPID := patient.PatientID

	fields := samplePatient("Anne", "Leigh")
	fields.Condition = "Recovered"

	updated, err := repo.UpdatePatient(patient.ID, fields)
	require.NoError(t, err)
	assert.Equal(t, "Anne", updated.FirstName)
	assert.Equal(t, "Recovered", updated.Condition)
	assert.Equal(t, originalPID, updated.PatientID)
	assert.Equal(t, patient.ID, updated.ID)
}

func TestPatientRepository_UpdateUnknownKey(t *testing.T) {
	repo := NewPatientRepo(openTestDB(t))

	_, err := repo.UpdatePatient("no-such-key", samplePatient("Ann", "Lee"))
	assert.ErrorIs(t, err, models.ErrPatientNotFound)
}

func TestPatientRepository_Delete(t *testing.T) {
	repo := NewPatientRepo(openTestDB(t))

	patient := samplePatient("Ann", "Lee")
	require.NoError(t, repo.CreatePatient(patient))

	require.NoError(t, repo.DeletePatient(patient.ID))

	all, err := repo.GetAllPatients()
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, repo.DeletePatient(patient.ID), models.ErrPatientNotFound)
}

func TestPatientRepository_FindAllInsertionOrder(t *testing.T) {
	repo := NewPatientRepo(openTestDB(t))

	first := samplePatient("Zed", "Zulu")
	second := samplePatient("Ann", "Lee")
	require.NoError(t, repo.CreatePatient(first))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, repo.CreatePatient(second))

	all, err := repo.GetAllPatients()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Zed", all[0].FirstName)
	assert.Equal(t, "Ann", all[1].FirstName)
}
