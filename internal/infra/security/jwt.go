package security

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domadmin "example.com/admin-console/internal/domain/admin"
	authuc "example.com/admin-console/internal/usecase/auth"
)

var ErrTokenRevoked = errors.New("token revoked")

// JWTService issues HS256 session tokens and remembers revoked token ids
// until they would have expired anyway.
type JWTService struct {
	secret     []byte
	expiration time.Duration
	now        func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewJWTService(secret string, expiration time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expiration: expiration,
		now:        time.Now,
		revoked:    make(map[string]time.Time),
	}
}

type jwtClaims struct {
	AdminID  int64  `json:"aid"`
	Username string `json:"usr"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

func (s *JWTService) GenerateToken(a *domadmin.Admin) (string, error) {
	now := s.now()
	claims := jwtClaims{
		AdminID:  a.ID,
		Username: a.Username,
		Role:     string(a.RoleCode),
		Name:     a.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   a.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseToken(token string) (*authuc.Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if s.isRevoked(claims.ID) {
		return nil, ErrTokenRevoked
	}

	role, err := domadmin.ParseRoleCode(claims.Role)
	if err != nil {
		return nil, err
	}

	out := &authuc.Claims{
		AdminID:  claims.AdminID,
		Username: claims.Username,
		Name:     claims.Name,
		RoleCode: role,
		TokenID:  claims.ID,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

// Revoke rejects the token id on every later ParseToken call.
func (s *JWTService) Revoke(c *authuc.Claims) {
	if c == nil || c.TokenID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked()
	until := c.ExpiresAt
	if until.IsZero() {
		until = s.now().Add(s.expiration)
	}
	s.revoked[c.TokenID] = until
}

func (s *JWTService) isRevoked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[id]
	return ok
}

// pruneLocked forgets ids whose tokens have expired on their own.
func (s *JWTService) pruneLocked() {
	now := s.now()
	for id, until := range s.revoked {
		if now.After(until) {
			delete(s.revoked, id)
		}
	}
}
