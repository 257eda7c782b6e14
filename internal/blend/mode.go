package blend

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned for a Mode value outside the defined set.
var ErrUnknownMode = errors.New("unknown blend mode")

// Mode selects a blend formula.
type Mode int

// Blend modes. The zero value is Normal.
const (
	Normal     Mode = iota // Result: S
	Multiply               // Result: S * D
	Screen                 // Result: S + D - S*D
	Darken                 // min(S, D)
	Lighten                // max(S, D)
	Difference             // |D - S|
	Exclusion              // S + D - 2*S*D
	Overlay                // HardLight with swapped layers
	HardLight              // Multiply or Screen depending on source
	ColorBurn              // 1 - (1 - D) / S
	SoftLight              // Soft version of HardLight
)

var modeNames = [...]string{
	Normal:     "normal",
	Multiply:   "multiply",
	Screen:     "screen",
	Darken:     "darken",
	Lighten:    "lighten",
	Difference: "difference",
	Exclusion:  "exclusion",
	Overlay:    "overlay",
	HardLight:  "hard_light",
	ColorBurn:  "color_burn",
	SoftLight:  "soft_light",
}

// Modes returns every blend mode in declaration order.
func Modes() []Mode {
	modes := make([]Mode, len(modeNames))
	for i := range modeNames {
		modes[i] = Mode(i)
	}
	return modes
}

// Valid reports whether m is a defined mode.
func (m Mode) Valid() bool {
	return m >= 0 && int(m) < len(modeNames)
}

func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the mode with the given name. Matching ignores case,
// surrounding space, and accepts '-' or ' ' in place of '_'
// ("Hard Light", "hard-light" and "hard_light" are equivalent).
func ParseMode(name string) (Mode, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for i, n := range modeNames {
		if n == norm || strings.ReplaceAll(n, "_", "") == norm {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
