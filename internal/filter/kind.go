package filter

import (
	"fmt"
	"strings"

	"github.com/ironsheep/pixel-pipeline-mcp/internal/pixel"
)

// Kind identifies one of the filters in this package.
type Kind int

// Filter kinds. The zero value is not a valid kind.
const (
	KindInvert Kind = iota + 1
	KindGrayscale
	KindThreshold
	KindBoxBlur
	KindUnsharpMask
	KindCanvasPad
	KindMemo
)

var kindNames = map[Kind]string{
	KindInvert:      "invert",
	KindGrayscale:   "grayscale",
	KindThreshold:   "threshold",
	KindBoxBlur:     "box_blur",
	KindUnsharpMask: "unsharp_mask",
	KindCanvasPad:   "canvas_pad",
	KindMemo:        "memo",
}

// Kinds returns every filter kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindInvert, KindGrayscale, KindThreshold, KindBoxBlur, KindUnsharpMask, KindCanvasPad, KindMemo}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the kind with the given name. Matching ignores case and
// accepts '-' in place of '_'.
func ParseKind(name string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for k, n := range kindNames {
		if n == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown filter: %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown filter kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Spec describes one filter stage as data. Only the fields used by Kind are
// consulted:
//   - KindThreshold: Low and High (nil selects black and white respectively)
//   - KindUnsharpMask: Scale
//   - KindCanvasPad: Reference
type Spec struct {
	Kind      Kind
	Scale     float64
	Low       *pixel.Color
	High      *pixel.Color
	Reference pixel.Source
}

// Apply builds the stage described by s on top of src.
func (s Spec) Apply(src pixel.Source) (pixel.Source, error) {
	switch s.Kind {
	case KindInvert:
		return NewInvert(src)
	case KindGrayscale:
		return NewGrayscale(src)
	case KindThreshold:
		low, high := pixel.Black, pixel.White
		if s.Low != nil {
			low = *s.Low
		}
		if s.High != nil {
			high = *s.High
		}
		return NewThresholdColors(src, low, high)
	case KindBoxBlur:
		return NewBoxBlur(src)
	case KindUnsharpMask:
		return NewUnsharpMask(src, s.Scale)
	case KindCanvasPad:
		return NewCanvasPad(src, s.Reference)
	case KindMemo:
		return NewMemo(src)
	default:
		return nil, fmt.Errorf("unknown filter kind %d", int(s.Kind))
	}
}

// Chain applies specs to src in order and returns the outermost stage.
// With no specs, src itself is returned.
func Chain(src pixel.Source, specs ...Spec) (pixel.Source, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: chain needs a base source", pixel.ErrIncompatibleSources)
	}
	out := src
	for i, spec := range specs {
		next, err := spec.Apply(out)
		if err != nil {
			return nil, fmt.Errorf("failed to build step %d (%s): %w", i, spec.Kind, err)
		}
		out = next
	}
	return out, nil
}
