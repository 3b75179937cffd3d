package repository

import (
	"errors"
	"log"

	"github.com/projectlaunchpad/intake/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BatchResult reports what a best-effort batch insert actually did, so
// callers can tell "duplicate, fine" apart from a genuine error.
type BatchResult struct {
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Failed     int `json:"failed"`
}

type FreelancerRepository struct {
	db *gorm.DB
}

func NewFreelancerRepository(db *gorm.DB) *FreelancerRepository {
	return &FreelancerRepository{db}
}

// UpsertByResumeID inserts a freelancer for a resume never seen before, or
// updates name/email/phone/summary of the existing row in place. The upsert
// key is the resume id, never the email. Returns the freelancer id.
func (r *FreelancerRepository) UpsertByResumeID(f *model.Freelancer) (uint, error) {
	var existing model.Freelancer
	err := r.db.Select("id").Where("resume_id = ?", f.ResumeID).First(&existing).Error
	switch {
	case err == nil:
		updates := map[string]any{
			"name":    f.Name,
			"email":   f.Email,
			"phone":   f.Phone,
			"summary": f.Summary,
		}
		if err := r.db.Model(&model.Freelancer{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
			return 0, err
		}
		return existing.ID, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.Create(f).Error; err != nil {
			return 0, err
		}
		return f.ID, nil
	default:
		return 0, err
	}
}

// FindByEmail looks a freelancer up for the edit screen. Only id and summary
// are selected.
func (r *FreelancerRepository) FindByEmail(email string) (*model.Freelancer, error) {
	var f model.Freelancer
	err := r.db.Select("id", "summary").Where("email = ?", email).First(&f).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// InsertSkills inserts each skill, ignoring rows that already exist for the
// freelancer. Other failures are counted and logged, never hidden.
func (r *FreelancerRepository) InsertSkills(skills []model.Skill) BatchResult {
	var res BatchResult
	for i := range skills {
		tx := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&skills[i])
		switch {
		case tx.Error != nil:
			res.Failed++
			log.Printf("skill insert failed (freelancer %d, %q): %v", skills[i].FreelancerID, skills[i].SkillName, tx.Error)
		case tx.RowsAffected == 0:
			res.Duplicates++
		default:
			res.Inserted++
		}
	}
	return res
}

func (r *FreelancerRepository) InsertProjects(projects []model.Project) BatchResult {
	var res BatchResult
	for i := range projects {
		tx := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&projects[i])
		switch {
		case tx.Error != nil:
			res.Failed++
			log.Printf("project insert failed (freelancer %d, %q): %v", projects[i].FreelancerID, projects[i].Title, tx.Error)
		case tx.RowsAffected == 0:
			res.Duplicates++
		default:
			res.Inserted++
		}
	}
	return res
}

func (r *FreelancerRepository) InsertExperience(entries []model.Experience) BatchResult {
	var res BatchResult
	for i := range entries {
		tx := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries[i])
		switch {
		case tx.Error != nil:
			res.Failed++
			log.Printf("experience insert failed (freelancer %d, %q): %v", entries[i].FreelancerID, entries[i].Title, tx.Error)
		case tx.RowsAffected == 0:
			res.Duplicates++
		default:
			res.Inserted++
		}
	}
	return res
}

func (r *FreelancerRepository) GetSkills(freelancerID uint) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.db.Where("freelancer_id = ?", freelancerID).Find(&skills).Error
	return skills, err
}

func (r *FreelancerRepository) GetProjects(freelancerID uint) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.Where("freelancer_id = ?", freelancerID).Find(&projects).Error
	return projects, err
}

func (r *FreelancerRepository) GetExperience(freelancerID uint) ([]model.Experience, error) {
	var entries []model.Experience
	err := r.db.Where("freelancer_id = ?", freelancerID).Find(&entries).Error
	return entries, err
}

// Deletes are row-by-row by primary id; there is no cascade anywhere.

func (r *FreelancerRepository) DeleteSkill(id uint) error {
	return r.db.Delete(&model.Skill{}, id).Error
}

func (r *FreelancerRepository) DeleteProject(id uint) error {
	return r.db.Delete(&model.Project{}, id).Error
}

func (r *FreelancerRepository) DeleteExperience(id uint) error {
	return r.db.Delete(&model.Experience{}, id).Error
}
