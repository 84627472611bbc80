package entities

import (
	"errors"
	"time"
)

type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"
	StatusReviewed  ApplicationStatus = "reviewed"
	StatusInterview ApplicationStatus = "interview"
	StatusRejected  ApplicationStatus = "rejected"
	StatusAccepted  ApplicationStatus = "accepted"
	StatusWithdrawn ApplicationStatus = "withdrawn"
)

func ToApplicationStatus(s string) (ApplicationStatus, error) {
	switch s {
	case string(StatusPending), string(StatusReviewed), string(StatusInterview),
		string(StatusRejected), string(StatusAccepted), string(StatusWithdrawn):
		return ApplicationStatus(s), nil
	default:
		return "", errors.New("invalid application status")
	}
}

// LiveStatuses are the statuses counted toward an advert's cached
// applications count.
var LiveStatuses = []ApplicationStatus{StatusPending, StatusReviewed, StatusInterview, StatusAccepted}

func (s ApplicationStatus) IsLive() bool {
	for _, live := range LiveStatuses {
		if s == live {
			return true
		}
	}
	return false
}

func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusWithdrawn
}

// JobApplication is one seeker's submission against one advert. At most one
// row exists per (seeker, advert) pair; withdrawal is a status, not a delete.
type JobApplication struct {
	ID          int64
	JobSeekerID int64 `gorm:"uniqueIndex:idx_seeker_advert"`
	JobSeeker   User
	JobAdvertID int64 `gorm:"uniqueIndex:idx_seeker_advert"`
	JobAdvert   JobAdvert
	CoverLetter string
	ResumePath  string
	Status      ApplicationStatus `gorm:"index;default:pending"`
	AppliedAt   time.Time         `gorm:"index;autoCreateTime"`
	UpdatedAt   time.Time
}
