// Package view defines the presentation contract the session controller
// drives. Implementations render what they are given; they never fetch or
// validate.
package view

import (
	"strings"

	"github.com/preston-bernstein/dugout/internal/domain"
)

// Section is a visible area of the application.
type Section string

const (
	SectionHome     Section = "home"
	SectionOrder    Section = "order"
	SectionSchedule Section = "schedule"
	SectionLogin    Section = "login"
)

// Sections lists the navigable sections in menu order.
var Sections = []Section{SectionHome, SectionOrder, SectionSchedule, SectionLogin}

// ParseSection accepts a section name, case-insensitively.
func ParseSection(raw string) (Section, bool) {
	s := Section(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Sections {
		if s == known {
			return s, true
		}
	}
	return "", false
}

// Protected reports whether the section needs an authenticated session.
func (s Section) Protected() bool {
	return s != SectionLogin
}

// Level classifies a notice.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is a user-visible message.
type Notice struct {
	Level Level
	Text  string
}

// Info builds an informational notice.
func Info(text string) Notice { return Notice{Level: LevelInfo, Text: text} }

// Warning builds a warning notice.
func Warning(text string) Notice { return Notice{Level: LevelWarning, Text: text} }

// Failure builds an error notice.
func Failure(text string) Notice { return Notice{Level: LevelError, Text: text} }

// Renderer is implemented by front ends.
type Renderer interface {
	RenderUnauthenticated()
	RenderAuthenticatedShell(initial Section)
	RenderSection(section Section, state domain.GameState)
	Notify(n Notice)
}

// Nop discards everything.
type Nop struct{}

func (Nop) RenderUnauthenticated()                  {}
func (Nop) RenderAuthenticatedShell(Section)        {}
func (Nop) RenderSection(Section, domain.GameState) {}
func (Nop) Notify(Notice)                           {}
