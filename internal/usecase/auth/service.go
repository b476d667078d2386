package auth

import (
	"context"
	"strings"
	"time"

	domadmin "example.com/admin-console/internal/domain/admin"
)

type PasswordComparer interface {
	Compare(hash string, password string) error
}

// Claims is the session carried by a signed token. Route guards read it from
// the request context; nothing is kept in global state.
type Claims struct {
	AdminID   int64
	Username  string
	Name      string
	RoleCode  domadmin.RoleCode
	TokenID   string
	ExpiresAt time.Time
}

type TokenService interface {
	GenerateToken(a *domadmin.Admin) (string, error)
	ParseToken(token string) (*Claims, error)
	Revoke(c *Claims)
}

type Service struct {
	adminRepo domadmin.Repository
	checker   PasswordComparer
	tokens    TokenService
}

func NewService(
	adminRepo domadmin.Repository,
	checker PasswordComparer,
	tokens TokenService,
) *Service {
	return &Service{
		adminRepo: adminRepo,
		checker:   checker,
		tokens:    tokens,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token string
	Admin *domadmin.Admin
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domadmin.ErrInvalidCredential
	}

	a, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, domadmin.ErrUnauthorized
	}

	if err := s.checker.Compare(a.PasswordHash, in.Password); err != nil {
		return nil, domadmin.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(a)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		Admin: a,
	}, nil
}

// Logout invalidates the session's token before its natural expiry.
func (s *Service) Logout(ctx context.Context, c *Claims) error {
	if c == nil {
		return domadmin.ErrUnauthorized
	}
	s.tokens.Revoke(c)
	return nil
}
