package repository

import (
	"github.com/projectlaunchpad/intake/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db}
}

func (r *ProjectRepository) CreateProject(project *model.ClientProject) error {
	return r.db.Create(project).Error
}

// GetProjects lists every stored project, newest first.
func (r *ProjectRepository) GetProjects() ([]model.ClientProject, error) {
	var projects []model.ClientProject
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}
