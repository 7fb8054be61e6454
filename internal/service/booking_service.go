package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutorbook/internal/ident"
	"tutorbook/internal/model"
	"tutorbook/internal/repository"
	"tutorbook/internal/session"
)

// BookingService holds the slot and appointment state-transition logic.
// Operations acting on behalf of "the current user" read the identity from
// the session manager, mutate the loaded collections in memory and write
// them back wholesale.
type BookingService struct {
	sessions     *session.Manager
	teachers     *repository.TeacherRepository
	appointments *repository.AppointmentRepository
	audit        *repository.AuditRepository
	ids          *ident.Generator
	logger       *zap.Logger
}

func NewBookingService(
	sessions *session.Manager,
	teachers *repository.TeacherRepository,
	appointments *repository.AppointmentRepository,
	audit *repository.AuditRepository,
	ids *ident.Generator,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		sessions:     sessions,
		teachers:     teachers,
		appointments: appointments,
		audit:        audit,
		ids:          ids,
		logger:       logger,
	}
}

// ListTeachers returns teachers whose name or subject contains the filter,
// case-insensitively. An empty filter returns everyone. Order is the
// insertion order of the collection, never sorted.
func (s *BookingService) ListTeachers(ctx context.Context, filter string) ([]model.Teacher, error) {
	teachers, err := s.teachers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter == "" {
		return teachers, nil
	}

	needle := strings.ToLower(filter)
	var matched []model.Teacher
	for _, t := range teachers {
		if strings.Contains(strings.ToLower(t.Name), needle) ||
			strings.Contains(strings.ToLower(t.Subject), needle) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

// BookAppointment consumes the teacher's first available slot and creates a
// Pending appointment for the current user. The slot taken is the first in
// insertion order, deliberately NOT the earliest dateTime: first added,
// first booked.
func (s *BookingService) BookAppointment(ctx context.Context, teacherID string) (*model.Appointment, error) {
	current, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNoSession
	}

	teachers, err := s.teachers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range teachers {
		if teachers[i].ID == teacherID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrTeacherNotFound
	}
	if len(teachers[idx].AvailableSlots) == 0 {
		return nil, ErrNoAvailableSlots
	}

	slot := teachers[idx].AvailableSlots[0]

	appointment := &model.Appointment{
		ID:        s.ids.Next(),
		StudentID: current.ID,
		TeacherID: teacherID,
		DateTime:  slot.DateTime,
		Status:    model.AppointmentStatusPending,
		CreatedAt: s.ids.Now().UTC().Format(time.RFC3339),
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	teachers[idx].AvailableSlots = teachers[idx].AvailableSlots[1:]
	if err := s.teachers.Save(ctx, teachers); err != nil {
		return nil, fmt.Errorf("remove booked slot: %w", err)
	}

	s.recordAudit(ctx, model.AuditActionAppointmentBooked, current.ID, appointment.ID)
	s.logger.Info("Appointment booked",
		zap.String("appointment_id", appointment.ID),
		zap.String("student_id", current.ID),
		zap.String("teacher_id", teacherID),
		zap.String("date_time", appointment.DateTime),
	)

	return appointment, nil
}

// CancelAppointment removes the appointment and, when the teacher still
// exists, puts a fresh slot with the original dateTime back on their
// availability. The recreated slot gets a new id; slot identity does not
// survive a cancel/rebook cycle. Unknown ids are a silent no-op.
func (s *BookingService) CancelAppointment(ctx context.Context, appointmentID string) error {
	appointments, err := s.appointments.GetAll(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range appointments {
		if appointments[i].ID == appointmentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	cancelled := appointments[idx]

	teachers, err := s.teachers.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range teachers {
		if teachers[i].ID == cancelled.TeacherID {
			teachers[i].AvailableSlots = append(teachers[i].AvailableSlots, model.Slot{
				ID:       s.ids.Next(),
				DateTime: cancelled.DateTime,
			})
			if err := s.teachers.Save(ctx, teachers); err != nil {
				return fmt.Errorf("restore slot: %w", err)
			}
			break
		}
	}

	appointments = append(appointments[:idx], appointments[idx+1:]...)
	if err := s.appointments.Save(ctx, appointments); err != nil {
		return fmt.Errorf("remove appointment: %w", err)
	}

	s.recordAudit(ctx, model.AuditActionAppointmentCancelled, cancelled.StudentID, appointmentID)
	s.logger.Info("Appointment cancelled",
		zap.String("appointment_id", appointmentID),
		zap.String("teacher_id", cancelled.TeacherID),
	)

	return nil
}

// UpdateAppointmentStatus overwrites the status in place. Approved and
// Rejected are both terminal. A rejected appointment's slot is NOT returned
// to the teacher's availability; only cancellation recreates slots. Unknown
// ids are a silent no-op.
func (s *BookingService) UpdateAppointmentStatus(ctx context.Context, appointmentID string, status model.AppointmentStatus) error {
	appointments, err := s.appointments.GetAll(ctx)
	if err != nil {
		return err
	}

	for i := range appointments {
		if appointments[i].ID == appointmentID {
			appointments[i].Status = status
			if err := s.appointments.Save(ctx, appointments); err != nil {
				return fmt.Errorf("update appointment status: %w", err)
			}

			s.recordAudit(ctx, model.AuditActionAppointmentDecided, appointments[i].TeacherID, appointmentID)
			s.logger.Info("Appointment status updated",
				zap.String("appointment_id", appointmentID),
				zap.String("status", string(status)),
			)
			return nil
		}
	}

	return nil
}

// AddSlot appends a new availability slot for the current user's teacher
// record.
func (s *BookingService) AddSlot(ctx context.Context, dateTime string) (*model.Slot, error) {
	if dateTime == "" {
		return nil, ErrMissingDateTime
	}

	current, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNoSession
	}

	teachers, err := s.teachers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range teachers {
		if teachers[i].ID == current.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrTeacherNotFound
	}

	slot := model.Slot{
		ID:       s.ids.Next(),
		DateTime: dateTime,
	}
	teachers[idx].AvailableSlots = append(teachers[idx].AvailableSlots, slot)
	if err := s.teachers.Save(ctx, teachers); err != nil {
		return nil, fmt.Errorf("save slot: %w", err)
	}

	s.recordAudit(ctx, model.AuditActionSlotAdded, current.ID, slot.ID)
	s.logger.Info("Slot added",
		zap.String("teacher_id", current.ID),
		zap.String("slot_id", slot.ID),
		zap.String("date_time", dateTime),
	)

	return &slot, nil
}

// RemoveSlot deletes a slot from the current user's teacher record. Unknown
// slot ids, or a session without a teacher record, are silent no-ops.
func (s *BookingService) RemoveSlot(ctx context.Context, slotID string) error {
	current, err := s.sessions.Current(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrNoSession
	}

	teachers, err := s.teachers.GetAll(ctx)
	if err != nil {
		return err
	}

	for i := range teachers {
		if teachers[i].ID != current.ID {
			continue
		}

		kept := teachers[i].AvailableSlots[:0]
		removed := false
		for _, slot := range teachers[i].AvailableSlots {
			if slot.ID == slotID {
				removed = true
				continue
			}
			kept = append(kept, slot)
		}
		if !removed {
			return nil
		}

		teachers[i].AvailableSlots = kept
		if err := s.teachers.Save(ctx, teachers); err != nil {
			return fmt.Errorf("save slots: %w", err)
		}

		s.recordAudit(ctx, model.AuditActionSlotRemoved, current.ID, slotID)
		s.logger.Info("Slot removed",
			zap.String("teacher_id", current.ID),
			zap.String("slot_id", slotID),
		)
		return nil
	}

	return nil
}

// recordAudit appends one trail entry. The trail is best effort: a failed
// append must not fail the operation that triggered it.
func (s *BookingService) recordAudit(ctx context.Context, action, actorID, target string) {
	entry := &model.AuditEntry{
		ID:      uuid.NewString(),
		Action:  action,
		ActorID: actorID,
		Target:  target,
		At:      s.ids.Now().UTC().Format(time.RFC3339),
	}
	if err := s.audit.Append(ctx, entry); err != nil {
		s.logger.Warn("Audit entry not recorded",
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
