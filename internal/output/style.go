package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tasker/internal/config"
)

// Tone selects the color of a message.
type Tone int

const (
	TonePlain Tone = iota
	ToneInfo       // blue
	ToneSuccess    // green
	ToneDanger     // red
	ToneNotice     // cyan
	ToneWarning    // yellow
)

// Styler renders text in the tones above. A disabled Styler returns text
// unchanged so output stays byte-exact in pipes and tests.
type Styler struct {
	enabled bool
	tones   map[Tone]lipgloss.Style
}

// NewStyler creates a Styler. When enabled is false no escape codes are
// ever emitted.
func NewStyler(enabled bool) *Styler {
	s := &Styler{enabled: enabled}
	if enabled {
		s.tones = map[Tone]lipgloss.Style{
			ToneInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
			ToneSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			ToneDanger:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			ToneNotice:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			ToneWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
		}
	}
	return s
}

// Plain returns a Styler that never colors.
func Plain() *Styler { return NewStyler(false) }

// Enabled reports whether the Styler emits colors.
func (s *Styler) Enabled() bool { return s.enabled }

// Render returns text in the given tone.
func (s *Styler) Render(tone Tone, text string) string {
	if !s.enabled {
		return text
	}
	style, ok := s.tones[tone]
	if !ok {
		return text
	}
	return style.Render(text)
}

// ColorEnabled resolves a config color mode against the output file.
// "always" forces an ANSI profile so lipgloss colors even when out is not a
// terminal; "auto" colors only when out is a terminal.
func ColorEnabled(mode string, out *os.File) bool {
	switch mode {
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true
	case config.ColorNever:
		return false
	default:
		if out == nil {
			return false
		}
		fd := out.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
}
