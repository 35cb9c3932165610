package service

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// GoogleClaims is the subset of the tokeninfo response the service needs.
type GoogleClaims struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
}

// GoogleVerifier validates a Google ID-token assertion and returns the
// identity it asserts.
type GoogleVerifier interface {
	Verify(idToken string) (*GoogleClaims, error)
}

// googleTokenInfoVerifier verifies assertions against Google's tokeninfo
// endpoint. An invalid or expired token yields a non-200 response.
type googleTokenInfoVerifier struct {
	httpClient   *resty.Client
	tokenInfoURL string
}

func NewGoogleVerifier(tokenInfoURL string) GoogleVerifier {
	client := resty.New().
		SetHeader("Accept", "application/json")

	return &googleTokenInfoVerifier{
		httpClient:   client,
		tokenInfoURL: tokenInfoURL,
	}
}

func (v *googleTokenInfoVerifier) Verify(idToken string) (*GoogleClaims, error) {
	var claims GoogleClaims
	resp, err := v.httpClient.R().
		SetQueryParam("id_token", idToken).
		SetResult(&claims).
		Get(v.tokenInfoURL)

	if err != nil {
		return nil, fmt.Errorf("failed to call tokeninfo endpoint: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("invalid Google token (status %d)", resp.StatusCode())
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("tokeninfo response missing subject")
	}
	return &claims, nil
}
