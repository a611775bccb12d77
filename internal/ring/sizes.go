package ring

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSize = errors.New("ring: unknown size")

// OuterSize is the visual footprint of the widget.
type OuterSize string

const (
	OuterSM   OuterSize = "sm"
	OuterMD   OuterSize = "md"
	OuterLG   OuterSize = "lg"
	OuterXL   OuterSize = "xl"
	OuterFull OuterSize = "full"
)

// BorderSize selects the ring stroke thickness.
type BorderSize string

const (
	BorderSM BorderSize = "sm"
	BorderMD BorderSize = "md"
	BorderLG BorderSize = "lg"
	BorderXL BorderSize = "xl"
)

// PaddingSize selects the gap between the rings and the image.
type PaddingSize string

const (
	PaddingSM   PaddingSize = "sm"
	PaddingMD   PaddingSize = "md"
	PaddingLG   PaddingSize = "lg"
	PaddingNone PaddingSize = "none"
)

var outerClasses = map[OuterSize]string{
	OuterSM:   "w-24",
	OuterMD:   "w-48",
	OuterLG:   "w-80",
	OuterXL:   "w-[600px]",
	OuterFull: "w-full",
}

var strokeWidths = map[BorderSize]float64{
	BorderSM: 10,
	BorderMD: 15,
	BorderLG: 20,
	BorderXL: 25,
}

var paddingPixels = map[PaddingSize]float64{
	PaddingSM:   5,
	PaddingMD:   10,
	PaddingLG:   20,
	PaddingNone: 0,
}

// OuterSizes lists every outer size bucket from smallest to largest.
func OuterSizes() []OuterSize {
	return []OuterSize{OuterSM, OuterMD, OuterLG, OuterXL, OuterFull}
}

// BorderSizeValues lists every border size.
func BorderSizeValues() []BorderSize {
	return []BorderSize{BorderSM, BorderMD, BorderLG, BorderXL}
}

// PaddingSizeValues lists every padding size.
func PaddingSizeValues() []PaddingSize {
	return []PaddingSize{PaddingSM, PaddingMD, PaddingLG, PaddingNone}
}

func (s OuterSize) Valid() bool {
	_, ok := outerClasses[s]
	return ok
}

// Class returns the width utility class for the size bucket, or "" if the
// size is unknown.
func (s OuterSize) Class() string {
	return outerClasses[s]
}

func (b BorderSize) Valid() bool {
	_, ok := strokeWidths[b]
	return ok
}

// StrokeWidth returns the stroke width in canvas pixels.
func (b BorderSize) StrokeWidth() float64 {
	return strokeWidths[b]
}

func (p PaddingSize) Valid() bool {
	_, ok := paddingPixels[p]
	return ok
}

// Pixels returns the gap in canvas pixels.
func (p PaddingSize) Pixels() float64 {
	return paddingPixels[p]
}

// ParseOuterSize parses a size name. An empty string yields fallback.
func ParseOuterSize(s string, fallback OuterSize) (OuterSize, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return fallback, nil
	}
	size := OuterSize(s)
	if !size.Valid() {
		return "", fmt.Errorf("%w: outer %q", ErrUnknownSize, s)
	}
	return size, nil
}

// ParseBorderSize parses a border name. An empty string yields fallback.
func ParseBorderSize(s string, fallback BorderSize) (BorderSize, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return fallback, nil
	}
	size := BorderSize(s)
	if !size.Valid() {
		return "", fmt.Errorf("%w: border %q", ErrUnknownSize, s)
	}
	return size, nil
}

// ParsePaddingSize parses a padding name. An empty string yields fallback.
func ParsePaddingSize(s string, fallback PaddingSize) (PaddingSize, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return fallback, nil
	}
	size := PaddingSize(s)
	if !size.Valid() {
		return "", fmt.Errorf("%w: padding %q", ErrUnknownSize, s)
	}
	return size, nil
}
