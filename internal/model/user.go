package model

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// User is a registered account. The password is kept exactly as entered: the
// store is private to a single profile and credential matching is literal.
type User struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Subject  string `json:"subject,omitempty"` // set only when Role is teacher
}

// IsTeacher checks if the user registered as a teacher
func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}
