package seed

import (
	"time"

	"github.com/projectnexus/jobboard/internal/entities"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run loads sample users, taxonomy, adverts and applications for development.
// It is a no-op when users already exist.
func Run(db *gorm.DB) error {

	var usersCount int64
	if err := db.Model(&entities.User{}).Count(&usersCount).Error; err != nil {
		return err
	}
	if usersCount > 0 {
		log.Info("database already seeded, skipping")
		return nil
	}

	users, err := seedUsers(db)
	if err != nil {
		return err
	}

	skills, categories, err := seedTaxonomy(db)
	if err != nil {
		return err
	}

	if err = seedAdverts(db, users, skills, categories); err != nil {
		return err
	}

	log.Info("database seeded with sample data")
	return nil
}

func seedUsers(db *gorm.DB) ([]entities.User, error) {

	samples := []struct {
		username string
		email    string
		userType entities.UserType
		company  string
		location string
	}{
		{"john_doe", "john.doe@example.com", entities.JobSeeker, "", "San Francisco, CA"},
		{"sarah_smith", "sarah.smith@example.com", entities.JobSeeker, "", "New York, NY"},
		{"techcorp", "hr@techcorp.example.com", entities.Employer, "TechCorp Inc.", "San Francisco, CA"},
		{"datalabs", "jobs@datalabs.example.com", entities.Employer, "DataLabs", "Remote"},
		{"admin", "admin@example.com", entities.Admin, "", ""},
	}

	users := make([]entities.User, 0, len(samples))
	for _, sample := range samples {
		// sample accounts use the username as password
		hash, err := bcrypt.GenerateFromPassword([]byte(sample.username), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		users = append(users, entities.User{
			Username:     sample.username,
			Email:        sample.email,
			PasswordHash: string(hash),
			UserType:     sample.userType,
			CompanyName:  sample.company,
			Location:     sample.location,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func seedTaxonomy(db *gorm.DB) ([]entities.Skill, []entities.Category, error) {

	skills := []entities.Skill{
		{Name: "Go", Description: "Go programming language"},
		{Name: "Python", Description: "Python programming language"},
		{Name: "SQL", Description: "Relational databases and SQL"},
		{Name: "React", Description: "React front-end framework"},
		{Name: "Docker", Description: "Containerization with Docker"},
	}
	if err := db.Create(&skills).Error; err != nil {
		return nil, nil, err
	}

	categories := []entities.Category{
		{Name: "Engineering"},
		{Name: "Data Science"},
		{Name: "Design"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return nil, nil, err
	}

	backend := entities.Category{Name: "Backend", ParentID: &categories[0].ID}
	if err := db.Create(&backend).Error; err != nil {
		return nil, nil, err
	}
	categories = append(categories, backend)

	return skills, categories, nil
}

func seedAdverts(db *gorm.DB, users []entities.User,
	skills []entities.Skill, categories []entities.Category) error {

	var employers []entities.User
	var seekers []entities.User
	for _, user := range users {
		switch user.UserType {
		case entities.Employer:
			employers = append(employers, user)
		case entities.JobSeeker:
			seekers = append(seekers, user)
		}
	}

	deadline := time.Now().UTC().AddDate(0, 0, entities.DefaultDeadlineDays)
	salaryMin, salaryMax := 120000.0, 180000.0

	adverts := []entities.JobAdvert{
		{
			EmployerID:          employers[0].ID,
			Title:               "Senior Backend Engineer",
			Description:         "Build and scale our core services.",
			Requirements:        "5+ years of backend experience.",
			Location:            "San Francisco, CA",
			JobType:             entities.FullTime,
			ExperienceLevel:     entities.SeniorLevel,
			SalaryMin:           &salaryMin,
			SalaryMax:           &salaryMax,
			SalaryCurrency:      "USD",
			ApplicationDeadline: &deadline,
			IsActive:            true,
			Skills: []entities.JobAdvertSkill{
				{SkillID: skills[0].ID, ImportanceLevel: 5},
				{SkillID: skills[2].ID, ImportanceLevel: 4},
			},
			Categories: []entities.JobAdvertCategory{
				{CategoryID: categories[0].ID},
			},
		},
		{
			EmployerID:          employers[1].ID,
			Title:               "Data Engineer",
			Description:         "Design data pipelines for analytics.",
			Requirements:        "Experience with Python and SQL.",
			Location:            "Remote",
			JobType:             entities.Contract,
			ExperienceLevel:     entities.MidLevel,
			IsRemote:            true,
			ApplicationDeadline: &deadline,
			IsActive:            true,
			Skills: []entities.JobAdvertSkill{
				{SkillID: skills[1].ID, ImportanceLevel: 5},
				{SkillID: skills[2].ID, ImportanceLevel: 3},
			},
			Categories: []entities.JobAdvertCategory{
				{CategoryID: categories[1].ID},
			},
		},
	}

	if err := db.Create(&adverts).Error; err != nil {
		return err
	}

	application := entities.JobApplication{
		JobSeekerID: seekers[0].ID,
		JobAdvertID: adverts[0].ID,
		CoverLetter: "I would love to join your team.",
		Status:      entities.StatusPending,
		AppliedAt:   time.Now().UTC(),
	}
	if err := db.Create(&application).Error; err != nil {
		return err
	}

	return db.Model(&entities.JobAdvert{}).
		Where("id = ?", adverts[0].ID).
		UpdateColumn("applications_count", 1).Error
}
