package dto

import "github.com/google/uuid"

// CreateClassRequest represents course creation data. The instructor id
// is taken from the bearer token, not the body.
type CreateClassRequest struct {
	CourseCode string  `json:"courseCode" binding:"required"`
	CourseName string  `json:"courseName" binding:"required"`
	Section    string  `json:"section" binding:"required"`
	Term       string  `json:"term" binding:"required"`
	Schedule   string  `json:"schedule" binding:"required"`
	Room       *string `json:"room,omitempty"`
}

// CreateClassResponse echoes the created class record
type CreateClassResponse struct {
	ClassID      uuid.UUID `json:"classId"`
	InstructorID uuid.UUID `json:"instructorId"`
	CourseCode   string    `json:"courseCode"`
	CourseName   string    `json:"courseName"`
	Section      string    `json:"section"`
	Term         string    `json:"term"`
	Schedule     string    `json:"schedule"`
	Room         *string   `json:"room,omitempty"`
}
