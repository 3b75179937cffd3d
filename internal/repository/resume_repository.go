package repository

import (
	"github.com/projectlaunchpad/intake/internal/model"
	"gorm.io/gorm"
)

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db}
}

// CreateResume stores the raw upload; the generated id is written back into
// the struct.
func (r *ResumeRepository) CreateResume(resume *model.Resume) error {
	return r.db.Create(resume).Error
}

func (r *ResumeRepository) CreateParsedResume(resumeID uint, parsedJSON string) error {
	row := model.ParsedResume{
		ResumeID:   resumeID,
		ParsedJSON: parsedJSON,
	}
	return r.db.Create(&row).Error
}

// FindParsedResume returns the raw JSON of the first parse attempt stored
// for a resume.
func (r *ResumeRepository) FindParsedResume(resumeID uint) (string, error) {
	var row model.ParsedResume
	err := r.db.Where("resume_id = ?", resumeID).First(&row).Error
	if err != nil {
		return "", err
	}
	return row.ParsedJSON, nil
}
