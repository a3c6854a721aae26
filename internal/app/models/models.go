// Package models contains the domain entities backed by the hosted
// Postgres tables, plus the request-scoped authenticated user value.
package models

import "github.com/google/uuid"

// ProfileType identifies the role a profile was created with. The type
// is fixed at signup; there is no role-change operation.
type ProfileType string

const (
	ProfileTypeStudent    ProfileType = "student"
	ProfileTypeInstructor ProfileType = "instructor"
)

// Valid reports whether t is one of the known profile types.
func (t ProfileType) Valid() bool {
	return t == ProfileTypeStudent || t == ProfileTypeInstructor
}

// Profile represents a row of the profiles table. One profile exists
// per identity-provider user, sharing the same id.
type Profile struct {
	ID        uuid.UUID   `json:"id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Bio       *string     `json:"bio,omitempty"`
	Type      ProfileType `json:"type"`
}

// Instructor represents a row of the instructors table. An instructor
// row exists only paired with a profile of type instructor with the
// same id; the signup flow is the only writer of that pairing.
type Instructor struct {
	ID             uuid.UUID `json:"id"`
	Department     *string   `json:"department,omitempty"`
	OfficeLocation *string   `json:"officeLocation,omitempty"`
}

// Class represents a row of the classes table. Uniqueness of
// code/section/term combinations is left to the store.
type Class struct {
	ID           uuid.UUID `json:"id"`
	InstructorID uuid.UUID `json:"instructorId"`
	CourseCode   string    `json:"courseCode"`
	CourseName   string    `json:"courseName"`
	Section      string    `json:"section"`
	Term         string    `json:"term"`
	Schedule     string    `json:"schedule"`
	Room         *string   `json:"room,omitempty"`
}

// CurrentUser is the authenticated caller derived from the bearer token
// on each request. It is never persisted.
type CurrentUser struct {
	UserID uuid.UUID   `json:"userId"`
	Email  string      `json:"email"`
	Type   ProfileType `json:"type"`
}

// IsInstructor reports whether the user authenticated as an instructor.
func (u CurrentUser) IsInstructor() bool {
	return u.Type == ProfileTypeInstructor
}

// IsStudent reports whether the user authenticated as a student.
func (u CurrentUser) IsStudent() bool {
	return u.Type == ProfileTypeStudent
}
