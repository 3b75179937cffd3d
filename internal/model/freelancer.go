package model

import "time"

// Source tags for skill/project/experience rows.
const (
	SourceParsed = "parsed"
	SourceManual = "manual"
)

// Freelancer is the normalized profile derived from one resume. The unique
// index on resume_id is what makes the upsert key the resume, not the email.
type Freelancer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ResumeID  uint      `gorm:"uniqueIndex;not null" json:"resume_id"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Email     string    `gorm:"type:varchar(255);index" json:"email"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone"`
	Summary   string    `gorm:"type:text" json:"summary"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *Freelancer) TableName() string {
	return "freelancers"
}

type Skill struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FreelancerID uint   `gorm:"not null;uniqueIndex:idx_freelancer_skill" json:"freelancer_id"`
	SkillName    string `gorm:"type:varchar(255);uniqueIndex:idx_freelancer_skill" json:"skill"`
	Source       string `gorm:"type:varchar(20)" json:"source"`
}

func (s *Skill) TableName() string {
	return "skills"
}

type Project struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FreelancerID uint   `gorm:"not null;uniqueIndex:idx_freelancer_project" json:"freelancer_id"`
	Title        string `gorm:"type:varchar(255);uniqueIndex:idx_freelancer_project" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Source       string `gorm:"type:varchar(20)" json:"source"`
}

func (p *Project) TableName() string {
	return "projects"
}

type Experience struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FreelancerID uint   `gorm:"not null;uniqueIndex:idx_freelancer_experience" json:"freelancer_id"`
	Title        string `gorm:"type:varchar(255);uniqueIndex:idx_freelancer_experience" json:"title"`
	Company      string `gorm:"type:varchar(255);uniqueIndex:idx_freelancer_experience" json:"company"`
	Duration     string `gorm:"type:varchar(100)" json:"duration"`
	Description  string `gorm:"type:text" json:"description"`
	Source       string `gorm:"type:varchar(20)" json:"source"`
}

func (e *Experience) TableName() string {
	return "experience"
}
