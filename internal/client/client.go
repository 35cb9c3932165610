// Package client implements the record-management client: an HTTP API client,
// a synchronized working copy of the record list, the add/edit form
// controller, and the filtered/sorted list projection.
package client

import (
	"context"
	"errors"
	"fmt"

	"patient-record-service/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrNoToken is returned when a protected call is attempted with no stored
// bearer token. Callers should send the user to the sign-in entry point.
var ErrNoToken = errors.New("no bearer token stored")

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

// PatientFields is the full field set sent on create and update.
type PatientFields struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	DOB          string `json:"dob"`
	Gender       string `json:"gender"`
	Age          int    `json:"age"`
	Condition    string `json:"condition"`
	DateAdmitted string `json:"dateAdmitted"`
	Address      string `json:"address"`
	Status       string `json:"status"`
	Email        string `json:"email"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

// APIClient talks to the patient record service. Calls carry no retry or
// timeout policy: a failed call is reported once and abandoned.
type APIClient struct {
	httpClient *resty.Client
	tokens     *TokenStore
	logger     *zap.Logger
}

// NewAPIClient creates a client for the service at baseURL. tokens may be nil
// when only the public record endpoints are used.
func NewAPIClient(baseURL string, tokens *TokenStore, logger *zap.Logger) *APIClient {
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &APIClient{
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
	}
}

// ListPatients fetches the full record list in store order.
func (c *APIClient) ListPatients(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	var apiErr errorBody

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&patients).
		SetError(&apiErr).
		Get("/api/patients")

	if err != nil {
		c.logger.Error("Failed to fetch patients", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch patients: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: apiErr.text()}
	}
	return patients, nil
}

// CreatePatient stores a new record and returns it with its assigned
// identifiers.
func (c *APIClient) CreatePatient(ctx context.Context, fields PatientFields) (*models.Patient, error) {
	var created models.Patient
	var apiErr errorBody

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(fields).
		SetResult(&created).
		SetError(&apiErr).
		Post("/api/patients")

	if err != nil {
		c.logger.Error("Failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: apiErr.text()}
	}

	c.logger.Info("Created patient", zap.String("patient_id", created.PatientID))
	return &created, nil
}

// UpdatePatient replaces all mutable fields of the record addressed by the
// internal key.
func (c *APIClient) UpdatePatient(ctx context.Context, key string, fields PatientFields) (*models.Patient, error) {
	var updated models.Patient
	var apiErr errorBody

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(fields).
		SetResult(&updated).
		SetError(&apiErr).
		Put("/api/patients/" + key)

	if err != nil {
		c.logger.Error("Failed to update patient", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: apiErr.text()}
	}
	return &updated, nil
}

// DeletePatient hard deletes the record addressed by the internal key.
func (c *APIClient) DeletePatient(ctx context.Context, key string) error {
	var apiErr errorBody

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetError(&apiErr).
		Delete("/api/patients/" + key)

	if err != nil {
		c.logger.Error("Failed to delete patient", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	if resp.IsError() {
		return &APIError{StatusCode: resp.StatusCode(), Message: apiErr.text()}
	}
	return nil
}

// FetchUser retrieves the signed-in username using the stored bearer token.
func (c *APIClient) FetchUser(ctx context.Context) (string, error) {
	if c.tokens == nil {
		return "", ErrNoToken
	}
	token, err := c.tokens.Load()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNoToken
	}

	var result struct {
		Username string `json:"username"`
	}
	var apiErr errorBody

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&result).
		SetError(&apiErr).
		Get("/api/user")

	if err != nil {
		return "", fmt.Errorf("failed to fetch user: %w", err)
	}
	if resp.IsError() {
		return "", &APIError{StatusCode: resp.StatusCode(), Message: apiErr.text()}
	}
	return result.Username, nil
}
