package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/niyatanya/habit-tracker/internal/domain/users"
	"github.com/niyatanya/habit-tracker/internal/pkg/logger"
)

func checkPassword(password string) error {
	if len(password) < users.MinPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", users.ErrWeakPassword, users.MinPasswordLength)
	}
	return nil
}

func mustFindUser(user mo.Option[*users.User], err error) (*users.User, error) {
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	found, ok := user.Get()
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return found, nil
}

// accountService implements the AccountService interface for registration and sign-in
type accountService struct {
	userRepo users.UserRepository
	hasher   users.PasswordHasher
	logger   logger.Logger
}

// NewAccountService creates a new accountService instance
func NewAccountService(userRepo users.UserRepository, hasher users.PasswordHasher, logger logger.Logger) (users.AccountService, error) {
	return &accountService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}, nil
}

// Register creates a USER account
func (s *accountService) Register(ctx context.Context, name, email, password string) (*users.User, error) {
	return s.create(ctx, name, email, password, users.RoleUser)
}

func (s *accountService) create(ctx context.Context, name, email, password string, role users.Role) (*users.User, error) {
	if err := checkPassword(password); err != nil {
		return nil, err
	}

	email = users.NormalizeEmail(email)
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if existing.IsPresent() {
		return nil, users.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	user := &users.User{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(name),
		Email:           email,
		PasswordHash:    hash,
		Role:            role,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return user, nil
}

// Login checks credentials. Blocked accounts are refused before the password is looked at.
func (s *accountService) Login(ctx context.Context, email, password string) (*users.User, error) {
	user, err := mustFindUser(s.userRepo.GetByEmail(ctx, users.NormalizeEmail(email)))
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Blocked {
		s.logger.Warn("Refused sign-in of blocked user with id ", user.ID)
		return nil, users.ErrUserBlocked
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return user, nil
}

// EnsureAdmin creates an ADMIN account unless email is already registered
func (s *accountService) EnsureAdmin(ctx context.Context, name, email, password string) (*users.User, error) {
	email = users.NormalizeEmail(email)
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if user, ok := existing.Get(); ok {
		if !user.IsAdmin() {
			s.logger.Warn("Configured admin email belongs to a regular user with id ", user.ID)
		}
		return user, nil
	}

	user, err := s.create(ctx, name, email, password, users.RoleAdmin)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Bootstrapped admin user with id ", user.ID)
	return user, nil
}

// profileService implements the ProfileService interface for the signed-in user
type profileService struct {
	userRepo users.UserRepository
	hasher   users.PasswordHasher
	logger   logger.Logger
}

// NewProfileService creates a new profileService instance
func NewProfileService(userRepo users.UserRepository, hasher users.PasswordHasher, logger logger.Logger) (users.ProfileService, error) {
	return &profileService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}, nil
}

// GetByID retrieves an account by ID
func (s *profileService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return mustFindUser(s.userRepo.GetByID(ctx, userID))
}

// Edit replaces name, email and password. An empty password keeps the current hash.
func (s *profileService) Edit(ctx context.Context, userID, name, email, password string) (*users.User, error) {
	user, err := mustFindUser(s.userRepo.GetByID(ctx, userID))
	if err != nil {
		return nil, err
	}

	email = users.NormalizeEmail(email)
	if email != user.Email {
		other, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if other.IsPresent() {
			return nil, users.ErrEmailTaken
		}
	}

	updated := *user
	updated.Name = strings.TrimSpace(name)
	updated.Email = email

	if password != "" {
		if err := checkPassword(password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		updated.PasswordHash = hash
	}

	if err := s.userRepo.UpdateByID(ctx, &updated); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &updated, nil
}

// Delete removes the account with its habits and records
func (s *profileService) Delete(ctx context.Context, userID string) error {
	user, err := mustFindUser(s.userRepo.GetByID(ctx, userID))
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return users.ErrAdminProtected
	}
	if err := s.userRepo.DeleteByID(ctx, user.ID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// administrationService implements the AdministrationService interface
type administrationService struct {
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewAdministrationService creates a new administrationService instance
func NewAdministrationService(userRepo users.UserRepository, logger logger.Logger) (users.AdministrationService, error) {
	return &administrationService{
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// List retrieves accounts ordered by email
func (s *administrationService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	list, err := s.userRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return list, nil
}

// GetByEmail retrieves an account by email
func (s *administrationService) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return mustFindUser(s.userRepo.GetByEmail(ctx, users.NormalizeEmail(email)))
}

// Block prevents a regular account from signing in
func (s *administrationService) Block(ctx context.Context, email string) (*users.User, error) {
	return s.setBlocked(ctx, email, true)
}

// Unblock lifts a block
func (s *administrationService) Unblock(ctx context.Context, email string) (*users.User, error) {
	return s.setBlocked(ctx, email, false)
}

func (s *administrationService) setBlocked(ctx context.Context, email string, blocked bool) (*users.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	switch {
	case user.IsAdmin():
		return nil, users.ErrAdminProtected
	case blocked && user.Blocked:
		return nil, users.ErrAlreadyBlocked
	case !blocked && !user.Blocked:
		return nil, users.ErrNotBlocked
	}

	user.Blocked = blocked
	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if blocked {
		s.logger.Info("Blocked user with id ", user.ID)
	} else {
		s.logger.Info("Unblocked user with id ", user.ID)
	}
	return user, nil
}

// Delete removes a regular account with its habits and records
func (s *administrationService) Delete(ctx context.Context, email string) error {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.IsAdmin() {
		return users.ErrAdminProtected
	}
	if err := s.userRepo.DeleteByID(ctx, user.ID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
