package model

type AppointmentStatus string

const (
	AppointmentStatusPending  AppointmentStatus = "Pending"
	AppointmentStatusApproved AppointmentStatus = "Approved"
	AppointmentStatusRejected AppointmentStatus = "Rejected"
)

// Appointment is a student's request to meet a teacher at a specific time.
// It starts Pending and is moved to Approved or Rejected by the teacher, or
// removed entirely when the student cancels. StudentID and TeacherID are not
// enforced references; dangling ids are tolerated and rendered as unknown.
type Appointment struct {
	ID        string            `json:"id"`
	StudentID string            `json:"studentId"`
	TeacherID string            `json:"teacherId"`
	DateTime  string            `json:"dateTime"`
	Status    AppointmentStatus `json:"status"`
	CreatedAt string            `json:"createdAt"`
}

// IsPending checks if the appointment still awaits the teacher's decision
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsApproved checks if the appointment was approved
func (a *Appointment) IsApproved() bool {
	return a.Status == AppointmentStatusApproved
}

// IsRejected checks if the appointment was rejected
func (a *Appointment) IsRejected() bool {
	return a.Status == AppointmentStatusRejected
}
