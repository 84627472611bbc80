package entities

import (
	"errors"
	"time"
)

type JobType string

const (
	FullTime   JobType = "full_time"
	PartTime   JobType = "part_time"
	Contract   JobType = "contract"
	Freelance  JobType = "freelance"
	Internship JobType = "internship"
)

func ToJobType(s string) (JobType, error) {
	switch s {
	case string(FullTime), string(PartTime), string(Contract), string(Freelance), string(Internship):
		return JobType(s), nil
	default:
		return "", errors.New("invalid job type")
	}
}

type ExperienceLevel string

const (
	EntryLevel     ExperienceLevel = "entry"
	MidLevel       ExperienceLevel = "mid"
	SeniorLevel    ExperienceLevel = "senior"
	ExecutiveLevel ExperienceLevel = "executive"
)

func ToExperienceLevel(s string) (ExperienceLevel, error) {
	switch s {
	case string(EntryLevel), string(MidLevel), string(SeniorLevel), string(ExecutiveLevel):
		return ExperienceLevel(s), nil
	default:
		return "", errors.New("invalid experience level")
	}
}

// DefaultDeadlineDays is applied when an advert is created without an
// explicit application deadline.
const DefaultDeadlineDays = 30

type JobAdvert struct {
	ID              int64
	EmployerID      int64 `gorm:"index"`
	Employer        User
	Title           string `gorm:"index"`
	Description     string
	Requirements    string
	Location        string          `gorm:"index"`
	JobType         JobType         `gorm:"index;default:full_time"`
	ExperienceLevel ExperienceLevel `gorm:"index;default:mid"`
	SalaryMin       *float64
	SalaryMax       *float64
	SalaryCurrency  string `gorm:"default:USD"`
	IsRemote        bool
	// ApplicationDeadline is always set after creation: adverts created
	// without one get now + DefaultDeadlineDays.
	ApplicationDeadline *time.Time
	IsActive            bool `gorm:"default:true"`
	ViewsCount          uint
	// ApplicationsCount caches the number of applications whose status is in
	// the live set. It is recomputed from the applications table and never
	// incremented independently.
	ApplicationsCount uint
	Skills            []JobAdvertSkill    `gorm:"constraint:OnDelete:CASCADE"`
	Categories        []JobAdvertCategory `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time           `gorm:"index"`
	UpdatedAt         time.Time
}

func (a *JobAdvert) DeadlinePassed(now time.Time) bool {
	return a.ApplicationDeadline != nil && a.ApplicationDeadline.Before(now)
}
