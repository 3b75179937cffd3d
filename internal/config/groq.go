package config

import (
	"os"
	"strconv"
	"sync"
)

type GroqConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

var (
	groqConfig *GroqConfig
	groqOnce   sync.Once
)

func LoadGroqConfig() *GroqConfig {
	groqOnce.Do(func() {
		baseURL := os.Getenv("GROQ_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.groq.com/openai/v1"
		}
		model := os.Getenv("GROQ_MODEL")
		if model == "" {
			model = "llama-3.1-8b-instant"
		}
		maxTokens, err := strconv.Atoi(os.Getenv("GROQ_MAX_TOKENS"))
		if err != nil || maxTokens <= 0 {
			maxTokens = 1024
		}
		groqConfig = &GroqConfig{
			APIKey:    os.Getenv("GROQ_API_KEY"),
			BaseURL:   baseURL,
			Model:     model,
			MaxTokens: maxTokens,
		}
	})
	return groqConfig
}
