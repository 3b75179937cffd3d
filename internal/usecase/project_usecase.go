package usecase

import (
	"strings"

	"github.com/projectlaunchpad/intake/internal/model"
	"github.com/projectlaunchpad/intake/internal/repository"
	"github.com/projectlaunchpad/intake/internal/util"
)

type ProjectUsecase struct {
	projectRepo *repository.ProjectRepository
}

func NewProjectUsecase(projectRepo *repository.ProjectRepository) *ProjectUsecase {
	return &ProjectUsecase{projectRepo: projectRepo}
}

// ProjectForm carries the raw submit of the project description form.
type ProjectForm struct {
	ProjectName     string
	Description     string
	Domain          string
	SkillsRequired  string
	NoOfFreelancers int
	Budget          int
	Deadline        string
}

// Submit validates and stores one project. Budget and the freelancer count
// are the only optional fields. Nothing is written when validation fails.
func (uc *ProjectUsecase) Submit(form ProjectForm) (*model.ClientProject, error) {
	fieldErrors := map[string]string{}
	for field, value := range map[string]string{
		"project_name":    form.ProjectName,
		"description":     form.Description,
		"domain":          form.Domain,
		"skills_required": form.SkillsRequired,
		"deadline":        form.Deadline,
	} {
		if strings.TrimSpace(value) == "" {
			fieldErrors[field] = "is required"
		}
	}
	if len(fieldErrors) > 0 {
		return nil, util.NewFormError("All fields except budget and freelancers must be provided", fieldErrors)
	}

	project := &model.ClientProject{
		ProjectName:     form.ProjectName,
		Description:     form.Description,
		Domain:          form.Domain,
		SkillsRequired:  form.SkillsRequired,
		NoOfFreelancers: form.NoOfFreelancers,
		Budget:          form.Budget,
		Deadline:        form.Deadline,
	}
	if err := uc.projectRepo.CreateProject(project); err != nil {
		return nil, err
	}
	return project, nil
}

func (uc *ProjectUsecase) List() ([]model.ClientProject, error) {
	return uc.projectRepo.GetProjects()
}
