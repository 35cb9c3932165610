package service

import (
	"errors"
	"fmt"
	"time"

	"patient-record-service/internal/models"
	"patient-record-service/internal/repository"
	"patient-record-service/pkg/utils"
)

type AuthService struct {
	userRepo *repository.UserRepository
	verifier GoogleVerifier
}

func NewAuthService(userRepo *repository.UserRepository, verifier GoogleVerifier) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		verifier: verifier,
	}
}

// LoginResponse represents the response structure for a token exchange
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ExchangeGoogleToken verifies a Google ID-token assertion and issues a
// service bearer token for the asserted identity, creating the account on
// first sign-in.
func (s *AuthService) ExchangeGoogleToken(idToken string) (*LoginResponse, error) {
	claims, err := s.verifier.Verify(idToken)
	if err != nil {
		return nil, errors.New("invalid identity assertion")
	}

	username := claims.Name
	if username == "" {
		username = claims.Email
	}

	user, err := s.userRepo.FindOrCreateByGoogleID(claims.Subject, username, claims.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	// Generate access token
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	// Generate refresh token
	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	// Hash and store refresh token
	tokenHash := utils.HashRefreshToken(refreshToken)
	refreshTokenModel := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(utils.GetRefreshTokenExpiry()),
	}

	if err := s.userRepo.CreateRefreshToken(refreshTokenModel); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

// RefreshAccessToken issues a new access token from a valid refresh token
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	tokenHash := utils.HashRefreshToken(refreshToken)

	stored, err := s.userRepo.FindValidRefreshToken(tokenHash)
	if err != nil {
		return "", errors.New("invalid or expired refresh token")
	}

	accessToken, err := utils.GenerateAccessToken(stored.User.ID, stored.User.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes the given refresh token
func (s *AuthService) Logout(refreshToken string) error {
	tokenHash := utils.HashRefreshToken(refreshToken)
	return s.userRepo.RevokeRefreshToken(tokenHash)
}
