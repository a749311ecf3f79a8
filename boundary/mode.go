package boundary

import "strings"

// Mode gates how much diagnostic detail the fallback view exposes. Raw error
// text is shown in development only; production withholds it.
type Mode int

const (
	ModeProduction Mode = iota
	ModeDevelopment
)

func (m Mode) String() string {
	if m == ModeDevelopment {
		return "development"
	}
	return "production"
}

// ParseMode maps a config value to a Mode. Unknown values fall back to
// production, the safe side of the disclosure gate.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev", "debug":
		return ModeDevelopment
	default:
		return ModeProduction
	}
}
