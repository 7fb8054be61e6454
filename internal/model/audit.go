package model

// AuditEntry records one booking mutation in the append-only audit trail.
type AuditEntry struct {
	ID      string `json:"id"` // opaque, uuid
	Action  string `json:"action"`
	ActorID string `json:"actorId"`
	Target  string `json:"target"` // id of the entity acted on
	At      string `json:"at"`
}

// Audit trail actions
const (
	AuditActionAppointmentBooked    = "appointment.booked"
	AuditActionAppointmentCancelled = "appointment.cancelled"
	AuditActionAppointmentDecided   = "appointment.decided"
	AuditActionSlotAdded            = "slot.added"
	AuditActionSlotRemoved          = "slot.removed"
)
