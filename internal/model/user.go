package model

import "time"

type UserRole string

const (
	RoleTeacher     UserRole = "teacher"
	RoleStudent     UserRole = "student"
	RoleAccompanist UserRole = "accompanist"
)

// DefaultTeacherID is the single teacher this deployment schedules for.
// Slots synthesized by the timeline generator are attributed to it.
const DefaultTeacherID = "teacher-1"

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

func (u *User) IsAccompanist() bool {
	return u.Role == RoleAccompanist
}
