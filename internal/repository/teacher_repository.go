package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"tutorbook/internal/model"
	"tutorbook/internal/storage"
)

const teachersKey = "teachers"

// TeacherRepository holds the teacher collection, including each teacher's
// availability, under one store key.
type TeacherRepository struct {
	store storage.Store
}

func NewTeacherRepository(store storage.Store) *TeacherRepository {
	return &TeacherRepository{store: store}
}

// GetAll loads the teacher collection in insertion order.
func (r *TeacherRepository) GetAll(ctx context.Context) ([]model.Teacher, error) {
	raw, err := r.store.Get(ctx, teachersKey)
	if err != nil {
		return nil, fmt.Errorf("load teachers: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var teachers []model.Teacher
	if err := json.Unmarshal(raw, &teachers); err != nil {
		return nil, fmt.Errorf("decode teachers: %w", err)
	}
	return teachers, nil
}

// Save writes the full collection back, replacing the stored value.
func (r *TeacherRepository) Save(ctx context.Context, teachers []model.Teacher) error {
	if teachers == nil {
		teachers = []model.Teacher{}
	}

	raw, err := json.Marshal(teachers)
	if err != nil {
		return fmt.Errorf("encode teachers: %w", err)
	}
	if err := r.store.Set(ctx, teachersKey, raw); err != nil {
		return fmt.Errorf("save teachers: %w", err)
	}
	return nil
}

// Create appends a new teacher to the collection.
func (r *TeacherRepository) Create(ctx context.Context, teacher *model.Teacher) error {
	teachers, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	return r.Save(ctx, append(teachers, *teacher))
}

// GetByID returns the teacher with the given id, or nil when absent.
func (r *TeacherRepository) GetByID(ctx context.Context, id string) (*model.Teacher, error) {
	teachers, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range teachers {
		if teachers[i].ID == id {
			return &teachers[i], nil
		}
	}
	return nil, nil
}
