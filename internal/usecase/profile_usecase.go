package usecase

import (
	"strings"

	"github.com/projectlaunchpad/intake/internal/dto"
	"github.com/projectlaunchpad/intake/internal/model"
	"github.com/projectlaunchpad/intake/internal/repository"
	"github.com/projectlaunchpad/intake/internal/util"
)

// ProfileUsecase backs the edit screen: read one profile, add rows by hand,
// delete rows by id. Manual rows carry source "manual" so they can be told
// apart from parsed ones.
type ProfileUsecase struct {
	freelancerRepo *repository.FreelancerRepository
}

func NewProfileUsecase(freelancerRepo *repository.FreelancerRepository) *ProfileUsecase {
	return &ProfileUsecase{freelancerRepo: freelancerRepo}
}

func (uc *ProfileUsecase) GetProfileByEmail(email string) (*dto.ProfileDTO, error) {
	freelancer, err := uc.freelancerRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	skills, err := uc.freelancerRepo.GetSkills(freelancer.ID)
	if err != nil {
		return nil, err
	}
	projects, err := uc.freelancerRepo.GetProjects(freelancer.ID)
	if err != nil {
		return nil, err
	}
	experience, err := uc.freelancerRepo.GetExperience(freelancer.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileDTO{
		ID:         freelancer.ID,
		Summary:    freelancer.Summary,
		Skills:     skills,
		Projects:   projects,
		Experience: experience,
	}, nil
}

func (uc *ProfileUsecase) AddSkill(freelancerID uint, skillName string) (repository.BatchResult, error) {
	if strings.TrimSpace(skillName) == "" {
		return repository.BatchResult{}, util.NewFormError("skill name is required", map[string]string{"skill": "is required"})
	}
	res := uc.freelancerRepo.InsertSkills([]model.Skill{
		{FreelancerID: freelancerID, SkillName: skillName, Source: model.SourceManual},
	})
	return res, nil
}

func (uc *ProfileUsecase) AddProject(freelancerID uint, title, description string) (repository.BatchResult, error) {
	if strings.TrimSpace(title) == "" {
		return repository.BatchResult{}, util.NewFormError("project title is required", map[string]string{"title": "is required"})
	}
	res := uc.freelancerRepo.InsertProjects([]model.Project{
		{FreelancerID: freelancerID, Title: title, Description: description, Source: model.SourceManual},
	})
	return res, nil
}

func (uc *ProfileUsecase) AddExperience(freelancerID uint, entry dto.ExperienceEntry) (repository.BatchResult, error) {
	if strings.TrimSpace(entry.Title) == "" {
		return repository.BatchResult{}, util.NewFormError("experience title is required", map[string]string{"title": "is required"})
	}
	res := uc.freelancerRepo.InsertExperience([]model.Experience{
		{FreelancerID: freelancerID, Title: entry.Title, Company: entry.Company, Duration: entry.Duration, Description: entry.Description, Source: model.SourceManual},
	})
	return res, nil
}

func (uc *ProfileUsecase) RemoveSkill(id uint) error {
	return uc.freelancerRepo.DeleteSkill(id)
}

func (uc *ProfileUsecase) RemoveProject(id uint) error {
	return uc.freelancerRepo.DeleteProject(id)
}

func (uc *ProfileUsecase) RemoveExperience(id uint) error {
	return uc.freelancerRepo.DeleteExperience(id)
}
