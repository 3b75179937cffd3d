package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/projectlaunchpad/intake/internal/dto"
	"github.com/projectlaunchpad/intake/internal/model"
	"github.com/projectlaunchpad/intake/internal/repository"
	"github.com/projectlaunchpad/intake/internal/service"
	"github.com/projectlaunchpad/intake/internal/util"
)

// Pipeline failure classes. Handlers map these onto user-facing messages.
var (
	ErrNoText     = errors.New("no text could be extracted from the file")
	ErrExtraction = errors.New("failed to extract resume text")
	ErrUpstream   = errors.New("hosted model request failed")
	ErrNoJSON     = errors.New("failed to extract valid JSON from the model reply")
)

type ResumeUsecase struct {
	resumeRepo     *repository.ResumeRepository
	freelancerRepo *repository.FreelancerRepository
	extractor      service.TextExtractorInterface
	groq           service.GroqServiceInterface
}

func NewResumeUsecase(resumeRepo *repository.ResumeRepository, freelancerRepo *repository.FreelancerRepository, extractor service.TextExtractorInterface, groq service.GroqServiceInterface) *ResumeUsecase {
	return &ResumeUsecase{
		resumeRepo:     resumeRepo,
		freelancerRepo: freelancerRepo,
		extractor:      extractor,
		groq:           groq,
	}
}

// Ingest runs one upload through the whole pipeline: extract text, persist
// the raw file, call the hosted model, recover the JSON span, persist the
// parse result, normalize the profile. Each step is its own store operation;
// a failure after the file insert leaves the resume row behind, which is the
// accepted failure model.
func (uc *ResumeUsecase) Ingest(filename string, data []byte) (*dto.IngestResultDTO, error) {
	text, err := uc.extractor.ExtractText(filename, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}

	resume := &model.Resume{Filename: filename, Filedata: data}
	if err := uc.resumeRepo.CreateResume(resume); err != nil {
		return nil, err
	}

	content, err := uc.groq.ParseResume(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// Keep the exact decoded span for the parsed_resumes row, then shape it.
	var raw json.RawMessage
	if !util.ExtractJSON(content, &raw) {
		return nil, ErrNoJSON
	}
	var profile dto.ParsedProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, ErrNoJSON
	}

	if err := uc.resumeRepo.CreateParsedResume(resume.ID, string(raw)); err != nil {
		return nil, err
	}

	freelancerID, err := uc.SaveFreelancerProfile(resume.ID, &profile)
	if err != nil {
		return nil, err
	}

	return &dto.IngestResultDTO{
		ResumeID:     resume.ID,
		FreelancerID: freelancerID,
		Profile:      &profile,
	}, nil
}

// SaveFreelancerProfile upserts the freelancer keyed by resume id, then runs
// the three duplicate-ignoring child inserts with source "parsed". The four
// steps are separate store operations with no atomicity across them.
func (uc *ResumeUsecase) SaveFreelancerProfile(resumeID uint, profile *dto.ParsedProfile) (uint, error) {
	freelancerID, err := uc.freelancerRepo.UpsertByResumeID(&model.Freelancer{
		ResumeID: resumeID,
		Name:     profile.Name,
		Email:    profile.Email,
		Phone:    profile.Phone,
		Summary:  profile.Summary,
	})
	if err != nil {
		return 0, err
	}

	skills := make([]model.Skill, 0, len(profile.Skills))
	for _, s := range profile.Skills {
		skills = append(skills, model.Skill{FreelancerID: freelancerID, SkillName: s, Source: model.SourceParsed})
	}
	logBatch("skills", freelancerID, uc.freelancerRepo.InsertSkills(skills))

	projects := make([]model.Project, 0, len(profile.Projects))
	for _, p := range profile.Projects {
		projects = append(projects, model.Project{FreelancerID: freelancerID, Title: p.Title, Description: p.Description, Source: model.SourceParsed})
	}
	logBatch("projects", freelancerID, uc.freelancerRepo.InsertProjects(projects))

	entries := make([]model.Experience, 0, len(profile.Experience))
	for _, e := range profile.Experience {
		entries = append(entries, model.Experience{FreelancerID: freelancerID, Title: e.Title, Company: e.Company, Duration: e.Duration, Description: e.Description, Source: model.SourceParsed})
	}
	logBatch("experience", freelancerID, uc.freelancerRepo.InsertExperience(entries))

	return freelancerID, nil
}

// FetchParsedResume returns the raw JSON stored for a resume's parse attempt.
func (uc *ResumeUsecase) FetchParsedResume(resumeID uint) (string, error) {
	return uc.resumeRepo.FindParsedResume(resumeID)
}

func logBatch(kind string, freelancerID uint, res repository.BatchResult) {
	if res.Failed > 0 {
		log.Printf("%s batch for freelancer %d: %d inserted, %d duplicates, %d FAILED", kind, freelancerID, res.Inserted, res.Duplicates, res.Failed)
		return
	}
	log.Printf("%s batch for freelancer %d: %d inserted, %d duplicates", kind, freelancerID, res.Inserted, res.Duplicates)
}
