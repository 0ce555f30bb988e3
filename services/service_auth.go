package services

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"blog-service/internal/apperr"
	"blog-service/model"
)

// AuthService resolves identities against the stakeholders service.
// Every failure mode collapses to Forbidden: a caller whose token the
// collaborator cannot vouch for has no identity here, and an unreachable
// collaborator must not be told apart from an invalid token (callers
// would otherwise probe the difference).
type AuthService struct {
	baseURL string
	client  *http.Client
}

func NewAuthService(baseURL string, timeout time.Duration) *AuthService {
	return &AuthService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *AuthService) Resolve(ctx context.Context, authHeader string) (*model.Identity, error) {
	if authHeader == "" {
		return nil, apperr.Forbidden("authentication required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/me", nil)
	if err != nil {
		return nil, apperr.Forbidden("authentication required")
	}
	req.Header.Set("Authorization", authHeader)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperr.Forbidden("authentication required")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperr.Forbidden("authentication required")
	}

	var identity model.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, apperr.Forbidden("authentication required")
	}
	if identity.UserID <= 0 || identity.Role == "" {
		return nil, apperr.Forbidden("authentication required")
	}

	return &identity, nil
}
