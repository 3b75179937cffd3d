package service

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/projectlaunchpad/intake/internal/config"
	"github.com/tidwall/gjson"
)

type GroqServiceInterface interface {
	ParseResume(resumeText string) (string, error)
}

// GroqService issues the one outbound call of the ingestion pipeline: a
// synchronous chat-completion POST against the hosted model.
type GroqService struct {
	cfg    *config.GroqConfig
	client *resty.Client
}

func NewGroqService(cfg *config.GroqConfig) *GroqService {
	return &GroqService{
		cfg:    cfg,
		client: resty.New(),
	}
}

const systemInstruction = "You are a helpful assistant."

// buildPrompt embeds the resume text in the fixed extraction instruction.
// The field list here is the contract the rest of the pipeline decodes into.
func buildPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an expert resume parser. From the resume text below, extract a JSON object with exactly this shape:
{
  "name": "<full name>",
  "email": "<email address>",
  "phone": "<phone number>",
  "summary": "<professional summary>",
  "experience": [{"title": "", "company": "", "duration": "", "description": ""}],
  "projects": [{"title": "", "description": ""}],
  "skills": ["<skill>"]
}

Always include every key, even when a field or list is empty.
If the resume has no summary section, write a short summary yourself from the rest of the text.
Respond with ONLY the raw JSON object. No markdown fences, no commentary.

Resume Text:
%s
`, resumeText)
}

// ParseResume returns the text content of the first completion choice. A
// non-200 status is terminal for the request; the raw response body rides
// along in the error and is never retried.
func (s *GroqService) ParseResume(resumeText string) (string, error) {
	resp, err := s.client.R().
		SetHeader("Authorization", "Bearer "+s.cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model": s.cfg.Model,
			"messages": []map[string]string{
				{"role": "system", "content": systemInstruction},
				{"role": "user", "content": buildPrompt(resumeText)},
			},
			"max_tokens": s.cfg.MaxTokens,
		}).
		Post(s.cfg.BaseURL + "/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("groq returned status %d: %s", resp.StatusCode(), resp.String())
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if content == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return content, nil
}
