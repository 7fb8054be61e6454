package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"tutorbook/internal/model"
	"tutorbook/internal/storage"
)

const usersKey = "users"

// UserRepository holds the full user collection under one store key.
// Every mutation is a read-modify-write of the whole collection.
type UserRepository struct {
	store storage.Store
}

func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

// GetAll loads the user collection in insertion order.
func (r *UserRepository) GetAll(ctx context.Context) ([]model.User, error) {
	raw, err := r.store.Get(ctx, usersKey)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// Save writes the full collection back, replacing the stored value.
func (r *UserRepository) Save(ctx context.Context, users []model.User) error {
	if users == nil {
		users = []model.User{}
	}

	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := r.store.Set(ctx, usersKey, raw); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	return nil
}

// Create appends a new user to the collection.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	users, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	return r.Save(ctx, append(users, *user))
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetByUsername returns the user with the given username, or nil when absent.
// Usernames are unique across both roles.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetByCredentials returns the user matching role, username and password
// exactly, or nil when no user matches all three.
func (r *UserRepository) GetByCredentials(ctx context.Context, role model.Role, username, password string) (*model.User, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username && users[i].Password == password && users[i].Role == role {
			return &users[i], nil
		}
	}
	return nil, nil
}
