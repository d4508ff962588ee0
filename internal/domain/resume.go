package domain

import (
	"context"
	"time"
)

// ResumeMetadata describes one resume file known to the resume store
type ResumeMetadata struct {
	ID         string    `json:"id"`
	FilePath   string    `json:"file_path"`
	ModifiedAt time.Time `json:"modified_at"`
	SizeBytes  int64     `json:"size_bytes"`
}

// ResumeRepository resolves resume ids to files on disk. Only consumed by
// the create-bid workflow when a resume id is given instead of a path.
type ResumeRepository interface {
	GetAllResumeMetadata(ctx context.Context) ([]ResumeMetadata, error)
	FileExists(path string) bool
}
