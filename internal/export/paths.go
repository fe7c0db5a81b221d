package export

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	dateLayout   = "2006-01-02"
	manifestName = "manifest.json"
)

// Path returns the export file for user on date (YYYY-MM-DD).
func Path(basePath, user, date string) string {
	return filepath.Join(basePath, userDir(user), date+".json")
}

// userDir keeps user names from escaping the export root.
func userDir(user string) string {
	user = strings.TrimSpace(user)
	if user == "" {
		return "anonymous"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, user)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
