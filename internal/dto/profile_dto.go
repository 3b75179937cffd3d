package dto

import "github.com/projectlaunchpad/intake/internal/model"

// ProfileDTO is what the edit screen gets back for one freelancer.
type ProfileDTO struct {
	ID         uint               `json:"id"`
	Summary    string             `json:"summary"`
	Skills     []model.Skill      `json:"skills"`
	Projects   []model.Project    `json:"projects"`
	Experience []model.Experience `json:"experience"`
}

type IngestResultDTO struct {
	ResumeID     uint           `json:"resume_id"`
	FreelancerID uint           `json:"freelancer_id"`
	Profile      *ParsedProfile `json:"profile"`
}
