package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"tutorbook/internal/model"
	"tutorbook/internal/storage"
)

const appointmentsKey = "appointments"

// AppointmentRepository holds the flat, global appointment collection under
// one store key. No entity owns an appointment except this collection.
type AppointmentRepository struct {
	store storage.Store
}

func NewAppointmentRepository(store storage.Store) *AppointmentRepository {
	return &AppointmentRepository{store: store}
}

// GetAll loads the appointment collection in insertion order.
func (r *AppointmentRepository) GetAll(ctx context.Context) ([]model.Appointment, error) {
	raw, err := r.store.Get(ctx, appointmentsKey)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var appointments []model.Appointment
	if err := json.Unmarshal(raw, &appointments); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appointments, nil
}

// Save writes the full collection back, replacing the stored value.
func (r *AppointmentRepository) Save(ctx context.Context, appointments []model.Appointment) error {
	if appointments == nil {
		appointments = []model.Appointment{}
	}

	raw, err := json.Marshal(appointments)
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}
	if err := r.store.Set(ctx, appointmentsKey, raw); err != nil {
		return fmt.Errorf("save appointments: %w", err)
	}
	return nil
}

// Create appends a new appointment to the collection.
func (r *AppointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	appointments, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	return r.Save(ctx, append(appointments, *appointment))
}

// GetByID returns the appointment with the given id, or nil when absent.
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	appointments, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range appointments {
		if appointments[i].ID == id {
			return &appointments[i], nil
		}
	}
	return nil, nil
}
