package widget

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"ringframe/internal/ring"
)

var (
	ErrInvalidSpeed = errors.New("widget: speed factor must be a finite number")
	ErrInvalidID    = errors.New("widget: id may only contain letters, digits, '-' and '_'")
)

var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FallbackText is shown in place of the image when no image is configured.
const FallbackText = "Please provide a valid image."

// Props configures one widget. The zero value of every optional field means
// "use the default"; call WithDefaults before rendering. SpeedFactor is a
// pointer so an explicit 0, which freezes the rings, differs from unset.
type Props struct {
	// ID prefixes the gradient and clip-path ids. Empty means a random id.
	ID          string
	Image       string
	Colors      []ring.Color
	Size        ring.OuterSize
	Border      ring.BorderSize
	Padding     ring.PaddingSize
	SpeedFactor *float64
	// Class is merged with the computed container classes.
	Class string
	// Attrs are passed through to the container element.
	Attrs map[string]string
	// Angles are the initial ring rotations in degrees.
	Angles [4]float64
}

// WithDefaults returns a copy of p with defaults applied.
func (p Props) WithDefaults() Props {
	if p.ID == "" {
		p.ID = newID()
	}
	if len(p.Colors) == 0 {
		p.Colors = ring.DefaultColors
	}
	if p.Size == "" {
		p.Size = ring.OuterMD
	}
	if p.Border == "" {
		p.Border = ring.BorderMD
	}
	if p.Padding == "" {
		p.Padding = ring.PaddingMD
	}
	if p.SpeedFactor == nil {
		p.SpeedFactor = Speed(1)
	}
	return p
}

// Speed returns a speed factor for Props.SpeedFactor.
func Speed(f float64) *float64 {
	return &f
}

// Speed returns the configured speed factor, 1 when unset.
func (p Props) Speed() float64 {
	if p.SpeedFactor == nil {
		return 1
	}
	return *p.SpeedFactor
}

// Validate checks a defaulted Props.
func (p Props) Validate() error {
	if !idPattern.MatchString(p.ID) {
		return fmt.Errorf("%w: %q", ErrInvalidID, p.ID)
	}
	if !p.Size.Valid() {
		return fmt.Errorf("%w: outer %q", ring.ErrUnknownSize, p.Size)
	}
	if !p.Border.Valid() {
		return fmt.Errorf("%w: border %q", ring.ErrUnknownSize, p.Border)
	}
	if !p.Padding.Valid() {
		return fmt.Errorf("%w: padding %q", ring.ErrUnknownSize, p.Padding)
	}
	if _, err := ring.AssignColors(p.Colors); err != nil {
		return err
	}
	for _, c := range p.Colors {
		if _, err := ring.ParseColor(string(c)); err != nil {
			return err
		}
	}
	if f := p.Speed(); math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrInvalidSpeed
	}
	return nil
}

// HasImage reports whether an image reference is configured.
func (p Props) HasImage() bool {
	return strings.TrimSpace(p.Image) != ""
}

// Values is the string form of Props as it arrives from a query string or
// command-line flags.
type Values struct {
	ID      string
	Image   string
	Colors  string
	Size    string
	Border  string
	Padding string
	Speed   string
	Class   string
}

// ParseValues converts string values into Props, leaving unset fields for
// WithDefaults.
func ParseValues(v Values) (Props, error) {
	colors, err := ring.ParseColors(v.Colors)
	if err != nil {
		return Props{}, err
	}
	size, err := ring.ParseOuterSize(v.Size, ring.OuterMD)
	if err != nil {
		return Props{}, err
	}
	border, err := ring.ParseBorderSize(v.Border, ring.BorderMD)
	if err != nil {
		return Props{}, err
	}
	padding, err := ring.ParsePaddingSize(v.Padding, ring.PaddingMD)
	if err != nil {
		return Props{}, err
	}
	var speed *float64
	if strings.TrimSpace(v.Speed) != "" {
		f, err := ParseSpeed(v.Speed)
		if err != nil {
			return Props{}, err
		}
		speed = &f
	}
	return Props{
		ID:          strings.TrimSpace(v.ID),
		Image:       v.Image,
		Colors:      colors,
		Size:        size,
		Border:      border,
		Padding:     padding,
		SpeedFactor: speed,
		Class:       v.Class,
	}, nil
}

// ParseSpeed parses a speed factor. An empty string yields 1.
func ParseSpeed(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSpeed, s)
	}
	return f, nil
}
