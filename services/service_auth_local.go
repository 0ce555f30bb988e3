package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"blog-service/internal/apperr"
	"blog-service/model"
)

type localClaims struct {
	UID      int64  `json:"uid,omitempty"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// LocalAuthService resolves identities by verifying the bearer token
// in-process instead of calling the stakeholders service. Meant for
// single-process deployments where both services share JWT_SECRET.
// Only HS256 tokens are accepted; the user id comes from the uid claim,
// falling back to the subject.
type LocalAuthService struct {
	secret []byte
}

func NewLocalAuthService(secret string) *LocalAuthService {
	return &LocalAuthService{secret: []byte(secret)}
}

func (s *LocalAuthService) Resolve(ctx context.Context, authHeader string) (*model.Identity, error) {
	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return nil, apperr.Forbidden("authentication required")
	}
	tokenStr := strings.TrimSpace(authHeader[7:])

	var claims localClaims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, apperr.Forbidden("authentication required")
	}

	uid := claims.UID
	if uid == 0 && claims.Subject != "" {
		uid, _ = strconv.ParseInt(claims.Subject, 10, 64)
	}
	if uid <= 0 || claims.Role == "" {
		return nil, apperr.Forbidden("authentication required")
	}

	return &model.Identity{UserID: uid, Username: claims.Username, Role: claims.Role}, nil
}
