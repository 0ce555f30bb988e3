package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"blog-service/internal/apperr"
)

// FollowerService queries the follower service. Unlike identity
// resolution, a failure here is a real upstream outage: the caller has
// already proven who they are, so errors surface as 500, not 403.
type FollowerService struct {
	baseURL string
	client  *http.Client
}

func NewFollowerService(baseURL string, timeout time.Duration) *FollowerService {
	return &FollowerService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *FollowerService) get(ctx context.Context, authHeader, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return apperr.Upstream("follower service unavailable", err)
	}
	req.Header.Set("Authorization", authHeader)

	resp, err := s.client.Do(req)
	if err != nil {
		return apperr.Upstream("follower service unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apperr.Upstream("follower service unavailable", fmt.Errorf("status %d", resp.StatusCode))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.Upstream("follower service unavailable", err)
	}
	return nil
}

func (s *FollowerService) IsFollowedByMe(ctx context.Context, authHeader string, userID int64) (bool, error) {
	var body struct {
		Value bool `json:"value"`
	}
	path := fmt.Sprintf("/api/follow/followedByMe/%d", userID)
	if err := s.get(ctx, authHeader, path, &body); err != nil {
		return false, err
	}
	return body.Value, nil
}

func (s *FollowerService) FollowedByMe(ctx context.Context, authHeader string) ([]int64, error) {
	var users []struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	if err := s.get(ctx, authHeader, "/api/follow/followedByMe", &users); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}
