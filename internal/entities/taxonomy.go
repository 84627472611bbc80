package entities

type Skill struct {
	ID          int64
	Name        string `gorm:"uniqueIndex"`
	Description string
}

type Category struct {
	ID          int64
	Name        string `gorm:"uniqueIndex"`
	Description string
	ParentID    *int64
}

const DefaultImportanceLevel = 3

type JobAdvertSkill struct {
	ID          int64
	JobAdvertID int64 `gorm:"uniqueIndex:idx_advert_skill"`
	SkillID     int64 `gorm:"uniqueIndex:idx_advert_skill"`
	Skill       Skill
	// ImportanceLevel ranges 1..5.
	ImportanceLevel int `gorm:"default:3"`
}

type JobAdvertCategory struct {
	ID          int64
	JobAdvertID int64 `gorm:"uniqueIndex:idx_advert_category"`
	CategoryID  int64 `gorm:"uniqueIndex:idx_advert_category"`
	Category    Category
}
