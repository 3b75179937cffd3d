package usecase

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/projectlaunchpad/intake/internal/dto"
	"github.com/projectlaunchpad/intake/internal/model"
	"github.com/projectlaunchpad/intake/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractText(filename string, data []byte) (string, error) {
	return f.text, f.err
}

type fakeGroq struct {
	reply string
	err   error
	calls int
}

func (f *fakeGroq) ParseResume(resumeText string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Resume{},
		&model.ParsedResume{},
		&model.Freelancer{},
		&model.Skill{},
		&model.Project{},
		&model.Experience{},
	))
	return db
}

func newTestUsecase(t *testing.T, db *gorm.DB, extractor *fakeExtractor, groq *fakeGroq) *ResumeUsecase {
	t.Helper()
	return NewResumeUsecase(
		repository.NewResumeRepository(db),
		repository.NewFreelancerRepository(db),
		extractor,
		groq,
	)
}

const goodReply = `Here is what I found: {
  "name": "Ada Lovelace",
  "email": "ada@example.com",
  "phone": "555-0100",
  "summary": "Analyst and engineer.",
  "experience": [{"title": "Engineer", "company": "Babbage & Co", "duration": "3 years", "description": "Engines"}],
  "projects": [{"title": "Notes", "description": "Annotated translation"}],
  "skills": ["Mathematics", "Computing"]
} hope that helps`

func TestIngestHappyPath(t *testing.T) {
	db := openTestDB(t)
	groq := &fakeGroq{reply: goodReply}
	uc := newTestUsecase(t, db, &fakeExtractor{text: "resume text"}, groq)

	result, err := uc.Ingest("cv.pdf", []byte("%PDF"))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 1, groq.calls)
	assert.Equal(t, "Ada Lovelace", result.Profile.Name)
	assert.NotZero(t, result.ResumeID)
	assert.NotZero(t, result.FreelancerID)

	var resume model.Resume
	require.NoError(t, db.First(&resume, result.ResumeID).Error)
	assert.Equal(t, "cv.pdf", resume.Filename)
	assert.Equal(t, []byte("%PDF"), resume.Filedata)

	var parsed model.ParsedResume
	require.NoError(t, db.Where("resume_id = ?", result.ResumeID).First(&parsed).Error)
	assert.Contains(t, parsed.ParsedJSON, `"Ada Lovelace"`)

	var skills []model.Skill
	require.NoError(t, db.Where("freelancer_id = ?", result.FreelancerID).Find(&skills).Error)
	assert.Len(t, skills, 2)
	for _, s := range skills {
		assert.Equal(t, model.SourceParsed, s.Source)
	}

	var projects []model.Project
	require.NoError(t, db.Where("freelancer_id = ?", result.FreelancerID).Find(&projects).Error)
	require.Len(t, projects, 1)
	assert.Equal(t, "Notes", projects[0].Title)

	var entries []model.Experience
	require.NoError(t, db.Where("freelancer_id = ?", result.FreelancerID).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, "Babbage & Co", entries[0].Company)
}

func TestIngestEmptyTextSkipsModelCall(t *testing.T) {
	db := openTestDB(t)
	groq := &fakeGroq{reply: goodReply}
	uc := newTestUsecase(t, db, &fakeExtractor{text: ""}, groq)

	_, err := uc.Ingest("notes.txt", []byte("plain text"))
	assert.ErrorIs(t, err, ErrNoText)
	assert.Equal(t, 0, groq.calls)

	// Nothing persisted, not even the raw file.
	var count int64
	require.NoError(t, db.Model(&model.Resume{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestIngestExtractionFailure(t *testing.T) {
	db := openTestDB(t)
	groq := &fakeGroq{reply: goodReply}
	uc := newTestUsecase(t, db, &fakeExtractor{err: errors.New("corrupt file")}, groq)

	_, err := uc.Ingest("cv.pdf", []byte("junk"))
	assert.ErrorIs(t, err, ErrExtraction)
	assert.Equal(t, 0, groq.calls)
}

func TestIngestUpstreamFailure(t *testing.T) {
	db := openTestDB(t)
	uc := newTestUsecase(t, db, &fakeExtractor{text: "resume text"}, &fakeGroq{err: errors.New("status 500: upstream body")})

	_, err := uc.Ingest("cv.pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "upstream body")

	// The raw file is persisted before the model call; that stays.
	var count int64
	require.NoError(t, db.Model(&model.Resume{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIngestUndecodableReply(t *testing.T) {
	db := openTestDB(t)
	uc := newTestUsecase(t, db, &fakeExtractor{text: "resume text"}, &fakeGroq{reply: "I cannot parse this resume, sorry."})

	_, err := uc.Ingest("cv.pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, ErrNoJSON)

	// Resume row persisted, parse result not.
	var resumes, parsed int64
	require.NoError(t, db.Model(&model.Resume{}).Count(&resumes).Error)
	require.NoError(t, db.Model(&model.ParsedResume{}).Count(&parsed).Error)
	assert.Equal(t, int64(1), resumes)
	assert.Equal(t, int64(0), parsed)
}

func TestSaveFreelancerProfileIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	uc := newTestUsecase(t, db, &fakeExtractor{}, &fakeGroq{})

	profile := &dto.ParsedProfile{
		Name:    "Ada",
		Email:   "ada@example.com",
		Phone:   "555",
		Summary: "first",
		Skills:  []string{"Go", "SQL"},
		Projects: []dto.ProjectEntry{
			{Title: "CRM", Description: "built a CRM"},
		},
		Experience: []dto.ExperienceEntry{
			{Title: "Engineer", Company: "Acme", Duration: "2y", Description: "work"},
		},
	}

	id1, err := uc.SaveFreelancerProfile(42, profile)
	require.NoError(t, err)

	profile.Summary = "second"
	id2, err := uc.SaveFreelancerProfile(42, profile)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	var f model.Freelancer
	require.NoError(t, db.First(&f, id1).Error)
	assert.Equal(t, "second", f.Summary)

	var skills int64
	require.NoError(t, db.Model(&model.Skill{}).Where("freelancer_id = ?", id1).Count(&skills).Error)
	assert.Equal(t, int64(2), skills)

	var projects int64
	require.NoError(t, db.Model(&model.Project{}).Where("freelancer_id = ?", id1).Count(&projects).Error)
	assert.Equal(t, int64(1), projects)

	var entries int64
	require.NoError(t, db.Model(&model.Experience{}).Where("freelancer_id = ?", id1).Count(&entries).Error)
	assert.Equal(t, int64(1), entries)
}

func TestSaveFreelancerProfileMissingListsDefaultEmpty(t *testing.T) {
	db := openTestDB(t)
	uc := newTestUsecase(t, db, &fakeExtractor{}, &fakeGroq{})

	id, err := uc.SaveFreelancerProfile(1, &dto.ParsedProfile{Name: "A", Email: "a@b.c"})
	require.NoError(t, err)

	var skills int64
	require.NoError(t, db.Model(&model.Skill{}).Where("freelancer_id = ?", id).Count(&skills).Error)
	assert.Equal(t, int64(0), skills)
}
