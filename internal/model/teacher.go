package model

// Teacher is the bookable projection of a teacher account, created alongside
// it at registration. It exclusively owns its AvailableSlots sequence; a slot
// removed here lives on only as the appointment that consumed it.
type Teacher struct {
	ID             string `json:"id"` // same value as the teacher's User.ID
	Name           string `json:"name"`
	Username       string `json:"username"`
	Subject        string `json:"subject"`
	AvailableSlots []Slot `json:"availableSlots"`
}

// Slot is a single unit of availability. IDs are minted from the creation
// timestamp and are not stable across a cancel/rebook cycle: cancelling an
// appointment puts a fresh slot (new ID, original dateTime) back on the
// teacher.
type Slot struct {
	ID       string `json:"id"`
	DateTime string `json:"dateTime"`
}
