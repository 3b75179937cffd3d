package model

import "time"

// Resume keeps the uploaded file exactly as received. Rows are never
// updated or deleted once written.
type Resume struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Filename  string    `gorm:"type:varchar(255)" json:"filename"`
	Filedata  []byte    `gorm:"type:longblob" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Resume) TableName() string {
	return "resumes"
}

// ParsedResume stores the raw JSON text the model returned for one upload
// attempt. A resume can accumulate several rows across re-parses.
type ParsedResume struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ResumeID   uint      `gorm:"index;not null" json:"resume_id"`
	ParsedJSON string    `gorm:"type:text;column:parsed_json" json:"parsed_json"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p *ParsedResume) TableName() string {
	return "parsed_resumes"
}
