package entities

import (
	"errors"
	"time"
)

type UserType string

const (
	JobSeeker UserType = "job_seeker"
	Employer  UserType = "employer"
	Admin     UserType = "admin"
)

func ToUserType(s string) (UserType, error) {
	switch s {
	case string(JobSeeker):
		return JobSeeker, nil
	case string(Employer):
		return Employer, nil
	case string(Admin):
		return Admin, nil
	default:
		return "", errors.New("invalid user type")
	}
}

type User struct {
	ID           int64
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	UserType     UserType `gorm:"default:job_seeker"`
	CompanyName  string
	PhoneNumber  string
	Bio          string
	Website      string
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsEmployer() bool {
	return u.UserType == Employer
}

func (u *User) IsJobSeeker() bool {
	return u.UserType == JobSeeker
}
