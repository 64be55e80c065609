package services

import (
	"context"
	"errors"

	"github.com/smartinvest/apiserver/internal/store"
	"github.com/smartinvest/apiserver/types"
)

// AdminUsername is the distinguished administrator account. Admin is an
// identity, not a role flag: the literal username gates the records view.
// Registration therefore refuses the name so a self-registered "admin"
// can never collide with the pre-seeded account.
const AdminUsername = "admin"

// defaultAdminPassword seeds the admin account at startup.
const defaultAdminPassword = "admin123"

// ErrReservedUsername is returned when registration requests the admin name.
var ErrReservedUsername = errors.New("username is reserved")

// ErrInvalidCredentials is returned when login does not exactly match a
// stored username/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// UserService encapsulates credential use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates a new account. The admin name is reserved; a taken
// username fails with store.ErrDuplicate and leaves the first
// registration untouched.
func (s *UserService) Register(ctx context.Context, username, password string) (types.User, error) {
	if username == AdminUsername {
		return types.User{}, ErrReservedUsername
	}
	return s.repo.Create(ctx, types.User{Username: username, Password: password})
}

// Authenticate succeeds iff the username exists and the stored password
// equals the given one. Passwords are plain text and the comparison is a
// plain string equality; there is no lockout or rate limiting.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (types.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.User{}, ErrInvalidCredentials
		}
		return types.User{}, err
	}
	if user.Password != password {
		return types.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// GetByUsername returns the stored user.
func (s *UserService) GetByUsername(ctx context.Context, username string) (types.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// EnsureAdmin seeds the admin account if it does not exist yet. Called
// once at startup so admin can authenticate without signup.
func (s *UserService) EnsureAdmin(ctx context.Context) error {
	_, err := s.repo.GetByUsername(ctx, AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	_, err = s.repo.Create(ctx, types.User{Username: AdminUsername, Password: defaultAdminPassword})
	if errors.Is(err, store.ErrDuplicate) {
		return nil
	}
	return err
}

// IsAdmin reports whether the username is the admin identity.
func IsAdmin(username string) bool {
	return username == AdminUsername
}
