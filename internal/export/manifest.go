package export

import (
	"encoding/json"
	"os"
	"time"
)

const manifestVersion = 1

// Manifest tracks which exports exist per user.
type Manifest struct {
	Version       int                    `json:"version"`
	GeneratedAt   time.Time              `json:"generatedAt"`
	RetentionDays int                    `json:"retentionDays"`
	Users         map[string]UserExports `json:"users"`
}

// UserExports lists one user's export dates, oldest first.
type UserExports struct {
	Dates        []string  `json:"dates"`
	LastExported time.Time `json:"lastExported"`
}

// ReadManifest loads the manifest at path. A missing or unreadable manifest
// yields an empty one alongside the error.
func ReadManifest(path string) (Manifest, error) {
	empty := Manifest{Version: manifestVersion, Users: map[string]UserExports{}}
	data, err := os.ReadFile(path)
	if err != nil {
		return empty, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return empty, err
	}
	return m, nil
}
