package dto

// ParsedProfile is the JSON shape the prompt instructs the model to return.
// Every field is always present in a well-formed reply, lists may be empty.
type ParsedProfile struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Summary    string            `json:"summary"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []ProjectEntry    `json:"projects"`
	Skills     []string          `json:"skills"`
}

type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type ProjectEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
