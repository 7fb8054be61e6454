package service

import (
	"context"
	"time"

	"tutorbook/internal/model"
	"tutorbook/internal/repository"
)

// Fallbacks for dangling references; the collections tolerate appointments
// whose student or teacher no longer resolves.
const (
	unknownTeacher = "Unknown Teacher"
	unknownStudent = "Unknown Student"
	noSubject      = "N/A"
)

// AppointmentView is one appointment prepared for display, with the
// counterparty resolved by name.
type AppointmentView struct {
	ID        string
	WithName  string
	Subject   string
	DateTime  string // stored value
	When      string // display form of DateTime
	Status    model.AppointmentStatus
	CanCancel bool
}

// DashboardService prepares the read models the renderer displays. It never
// mutates repository state.
type DashboardService struct {
	users        *repository.UserRepository
	teachers     *repository.TeacherRepository
	appointments *repository.AppointmentRepository
}

func NewDashboardService(
	users *repository.UserRepository,
	teachers *repository.TeacherRepository,
	appointments *repository.AppointmentRepository,
) *DashboardService {
	return &DashboardService{
		users:        users,
		teachers:     teachers,
		appointments: appointments,
	}
}

// StudentAppointments lists the student's appointments with the teacher
// resolved. Cancellation is only offered while the request is still pending.
func (s *DashboardService) StudentAppointments(ctx context.Context, studentID string) ([]AppointmentView, error) {
	appointments, err := s.appointments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.teachers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var views []AppointmentView
	for _, apt := range appointments {
		if apt.StudentID != studentID {
			continue
		}

		view := AppointmentView{
			ID:        apt.ID,
			WithName:  unknownTeacher,
			Subject:   noSubject,
			DateTime:  apt.DateTime,
			When:      FormatDateTime(apt.DateTime),
			Status:    apt.Status,
			CanCancel: apt.IsPending(),
		}
		for i := range teachers {
			if teachers[i].ID == apt.TeacherID {
				view.WithName = teachers[i].Name
				view.Subject = teachers[i].Subject
				break
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// PendingRequests lists the teacher's appointments still awaiting a decision,
// with the requesting student resolved.
func (s *DashboardService) PendingRequests(ctx context.Context, teacherID string) ([]AppointmentView, error) {
	return s.teacherAppointments(ctx, teacherID, model.AppointmentStatusPending)
}

// ApprovedSchedule lists the teacher's confirmed appointments.
func (s *DashboardService) ApprovedSchedule(ctx context.Context, teacherID string) ([]AppointmentView, error) {
	return s.teacherAppointments(ctx, teacherID, model.AppointmentStatusApproved)
}

func (s *DashboardService) teacherAppointments(ctx context.Context, teacherID string, status model.AppointmentStatus) ([]AppointmentView, error) {
	appointments, err := s.appointments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var views []AppointmentView
	for _, apt := range appointments {
		if apt.TeacherID != teacherID || apt.Status != status {
			continue
		}

		view := AppointmentView{
			ID:       apt.ID,
			WithName: unknownStudent,
			DateTime: apt.DateTime,
			When:     FormatDateTime(apt.DateTime),
			Status:   apt.Status,
		}
		for i := range users {
			if users[i].ID == apt.StudentID {
				view.WithName = users[i].Name
				break
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// TeacherSlots returns the teacher's current availability in insertion order.
// Unknown teachers get an empty list; the renderer treats both the same.
func (s *DashboardService) TeacherSlots(ctx context.Context, teacherID string) ([]model.Slot, error) {
	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, nil
	}
	return teacher.AvailableSlots, nil
}

// Layouts accepted for stored timestamps: what the engine writes, and the
// shorter form a datetime-local input produces.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
}

// FormatDateTime renders a stored timestamp for display. Values that parse
// as none of the known layouts pass through unchanged.
func FormatDateTime(value string) string {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02.01.2006 15:04")
		}
	}
	return value
}
