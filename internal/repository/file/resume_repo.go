package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-bidtrack-backend/internal/domain"

	gocache "github.com/patrickmn/go-cache"
)

const metadataCacheKey = "resume_metadata"

var resumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".md":   true,
	".txt":  true,
}

type resumeRepo struct {
	dir   string
	cache *gocache.Cache
}

// NewResumeRepository creates a resume store over a directory of resume
// files. Directory listings are cached with a TTL since the create-bid
// workflow hits the store on every resume-id resolution.
func NewResumeRepository(dir string, cacheTTL time.Duration) domain.ResumeRepository {
	return &resumeRepo{
		dir:   dir,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// GetAllResumeMetadata lists the known resume files. The id is the file name
// without extension, which is what the UI shows users to pick from.
func (r *resumeRepo) GetAllResumeMetadata(_ context.Context) ([]domain.ResumeMetadata, error) {
	if cached, ok := r.cache.Get(metadataCacheKey); ok {
		return cached.([]domain.ResumeMetadata), nil
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}

	metadata := make([]domain.ResumeMetadata, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !resumeExtensions[ext] {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		metadata = append(metadata, domain.ResumeMetadata{
			ID:         strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			FilePath:   filepath.Join(r.dir, entry.Name()),
			ModifiedAt: info.ModTime(),
			SizeBytes:  info.Size(),
		})
	}

	r.cache.Set(metadataCacheKey, metadata, gocache.DefaultExpiration)
	return metadata, nil
}

func (r *resumeRepo) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
