package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientProject struct {
	ID              uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	ProjectName     string    `gorm:"type:varchar(255)" json:"project_name"`
	Description     string    `gorm:"type:text" json:"description"`
	Domain          string    `gorm:"type:varchar(100)" json:"domain"`
	SkillsRequired  string    `gorm:"type:text" json:"skills_required"`
	NoOfFreelancers int       `json:"no_of_freelancers"`
	Budget          int       `json:"budget"`
	Deadline        string    `gorm:"type:date" json:"deadline"`
	CreatedAt       time.Time `json:"created_at"`
}

func (p *ClientProject) TableName() string {
	return "client_projects"
}

// MySQL has no server-side uuid default, assign before insert.
func (p *ClientProject) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
