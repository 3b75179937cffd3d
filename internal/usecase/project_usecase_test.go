package usecase

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/projectlaunchpad/intake/internal/model"
	"github.com/projectlaunchpad/intake/internal/repository"
	"github.com/projectlaunchpad/intake/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectUsecase(t *testing.T) (*ProjectUsecase, func() int64) {
	t.Helper()
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&model.ClientProject{}))
	count := func() int64 {
		var n int64
		require.NoError(t, db.Model(&model.ClientProject{}).Count(&n).Error)
		return n
	}
	return NewProjectUsecase(repository.NewProjectRepository(db)), count
}

func validForm() ProjectForm {
	return ProjectForm{
		ProjectName:     "Chatbot",
		Description:     "Customer support bot",
		Domain:          "NLP",
		SkillsRequired:  "python, rasa",
		NoOfFreelancers: 2,
		Budget:          5000,
		Deadline:        "2026-10-01",
	}
}

func TestProjectSubmitStoresRecord(t *testing.T) {
	uc, count := newProjectUsecase(t)

	project, err := uc.Submit(validForm())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, project.ID)
	assert.Equal(t, int64(1), count())

	projects, err := uc.List()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Chatbot", projects[0].ProjectName)
}

func TestProjectSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProjectForm)
		missing string
	}{
		{"missing name", func(f *ProjectForm) { f.ProjectName = "" }, "project_name"},
		{"missing description", func(f *ProjectForm) { f.Description = "  " }, "description"},
		{"missing domain", func(f *ProjectForm) { f.Domain = "" }, "domain"},
		{"missing skills", func(f *ProjectForm) { f.SkillsRequired = "" }, "skills_required"},
		{"missing deadline", func(f *ProjectForm) { f.Deadline = "" }, "deadline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, count := newProjectUsecase(t)
			form := validForm()
			tt.mutate(&form)

			_, err := uc.Submit(form)
			var formErr *util.FormError
			require.True(t, errors.As(err, &formErr))
			assert.Contains(t, formErr.Errors, tt.missing)

			// No partial write on validation failure.
			assert.Equal(t, int64(0), count())
		})
	}
}

func TestProjectSubmitOptionalFields(t *testing.T) {
	uc, _ := newProjectUsecase(t)

	form := validForm()
	form.Budget = 0
	form.NoOfFreelancers = 0

	_, err := uc.Submit(form)
	assert.NoError(t, err)
}
