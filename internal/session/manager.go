// Package session manages registration, login and the persisted identity of
// the active user. The identity is stored under its own key so it survives
// restarts until an explicit logout.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tutorbook/internal/ident"
	"tutorbook/internal/model"
	"tutorbook/internal/repository"
	"tutorbook/internal/storage"
)

const currentUserKey = "currentUser"

var (
	// ErrMissingField is returned when a required registration or login
	// field is blank. Subject counts as required for teachers.
	ErrMissingField = errors.New("all required fields must be filled")
	// ErrDuplicateUsername is returned when the username is already taken,
	// regardless of role.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials is returned when no user matches role, username
	// and password exactly.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Manager struct {
	store    storage.Store
	users    *repository.UserRepository
	teachers *repository.TeacherRepository
	ids      *ident.Generator
	logger   *zap.Logger
}

func NewManager(
	store storage.Store,
	users *repository.UserRepository,
	teachers *repository.TeacherRepository,
	ids *ident.Generator,
	logger *zap.Logger,
) *Manager {
	return &Manager{
		store:    store,
		users:    users,
		teachers: teachers,
		ids:      ids,
		logger:   logger,
	}
}

// Register creates a new account. Teachers additionally get a Teacher record
// with an empty availability sequence, created in the same operation.
func (m *Manager) Register(ctx context.Context, role model.Role, name, username, password, subject string) (*model.User, error) {
	if role == "" || name == "" || username == "" || password == "" {
		return nil, ErrMissingField
	}
	if role == model.RoleTeacher && subject == "" {
		return nil, ErrMissingField
	}

	existing, err := m.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check existing username: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	user := &model.User{
		ID:       m.ids.Next(),
		Role:     role,
		Name:     name,
		Username: username,
		Password: password,
	}
	if role == model.RoleTeacher {
		user.Subject = subject
	}

	if err := m.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if role == model.RoleTeacher {
		teacher := &model.Teacher{
			ID:             user.ID,
			Name:           user.Name,
			Username:       user.Username,
			Subject:        user.Subject,
			AvailableSlots: []model.Slot{},
		}
		if err := m.teachers.Create(ctx, teacher); err != nil {
			return nil, fmt.Errorf("create teacher record: %w", err)
		}
	}

	m.logger.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.String("username", user.Username),
	)

	return user, nil
}

// Login matches the credentials against the user collection and persists the
// matched user as the active session.
func (m *Manager) Login(ctx context.Context, role model.Role, username, password string) (*model.User, error) {
	if role == "" || username == "" || password == "" {
		return nil, ErrMissingField
	}

	user, err := m.users.GetByCredentials(ctx, role, username, password)
	if err != nil {
		return nil, fmt.Errorf("check credentials: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := m.store.Set(ctx, currentUserKey, raw); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	m.logger.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return user, nil
}

// Logout clears the persisted session identity.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Delete(ctx, currentUserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	m.logger.Info("User logged out")
	return nil
}

// Current returns the persisted session identity, or nil when nobody is
// logged in. Callers use nil as the signal to fall back to the login entry.
func (m *Manager) Current(ctx context.Context) (*model.User, error) {
	raw, err := m.store.Get(ctx, currentUserKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &user, nil
}
