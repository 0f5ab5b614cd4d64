package entity

import (
	"time"
)

type UserRole string

const (
	RolePatient UserRole = "Patient"
	RoleDoctor  UserRole = "Doctor"
	RoleStaff   UserRole = "Staff"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusInactive UserStatus = "Inactive"
)

type User struct {
	ID                string     `db:"id"` // U001, U002...
	Email             string     `db:"email"`
	PasswordHash      string     `db:"password"`
	FullName          string     `db:"full_name"`
	Phone             string     `db:"phone"`
	MailingAddress    string     `db:"mailing_address"`
	DateOfBirth       string     `db:"date_of_birth"`
	Gender            string     `db:"gender"`
	Role              UserRole   `db:"role"`
	Status            UserStatus `db:"status"`
	ProfilePictureURL string     `db:"profile_picture_url"`
	CreatedAt         time.Time  `db:"created_at"`
}
