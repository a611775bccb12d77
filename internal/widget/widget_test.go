package widget

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ringframe/internal/ring"
)

func render(t *testing.T, p Props) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Component(p).Render(context.Background(), &buf))
	return buf.String()
}

var containerClassRE = regexp.MustCompile(`^<div class="([^"]*)"`)

func containerClasses(t *testing.T, html string) []string {
	t.Helper()
	m := containerClassRE.FindStringSubmatch(html)
	require.Len(t, m, 2, "no container class in %q", html)
	return strings.Fields(m[1])
}

func TestWithDefaults(t *testing.T) {
	p := Props{Image: "cat.png"}.WithDefaults()
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, ring.DefaultColors, p.Colors)
	assert.Equal(t, ring.OuterMD, p.Size)
	assert.Equal(t, ring.BorderMD, p.Border)
	assert.Equal(t, ring.PaddingMD, p.Padding)
	assert.Equal(t, 1.0, p.Speed())
	require.NoError(t, p.Validate())

	kept := Props{ID: "a", Size: ring.OuterXL, SpeedFactor: Speed(-2)}.WithDefaults()
	assert.Equal(t, "a", kept.ID)
	assert.Equal(t, ring.OuterXL, kept.Size)
	assert.Equal(t, -2.0, kept.Speed())

	frozen := Props{ID: "a", SpeedFactor: Speed(0)}.WithDefaults()
	assert.Equal(t, 0.0, frozen.Speed())
}

func TestValidate(t *testing.T) {
	base := Props{ID: "w1"}.WithDefaults()

	bad := base
	bad.Colors = []ring.Color{"#111111", "#222222", "#333333", "#444444", "#555555"}
	require.ErrorIs(t, bad.Validate(), ring.ErrInvalidColorCount)

	bad = base
	bad.Colors = []ring.Color{"pink"}
	require.ErrorIs(t, bad.Validate(), ring.ErrInvalidColor)

	bad = base
	bad.Border = "huge"
	require.ErrorIs(t, bad.Validate(), ring.ErrUnknownSize)

	bad = base
	bad.ID = `x"><script>`
	require.ErrorIs(t, bad.Validate(), ErrInvalidID)
}

func TestParseValues(t *testing.T) {
	p, err := ParseValues(Values{
		ID:      "hero",
		Image:   "https://example.com/me.png",
		Colors:  "#ff0000,#00ff00",
		Size:    "lg",
		Border:  "sm",
		Padding: "none",
		Speed:   "2.5",
		Class:   "shadow-lg",
	})
	require.NoError(t, err)
	assert.Equal(t, "hero", p.ID)
	assert.Equal(t, []ring.Color{"#ff0000", "#00ff00"}, p.Colors)
	assert.Equal(t, ring.OuterLG, p.Size)
	assert.Equal(t, ring.BorderSM, p.Border)
	assert.Equal(t, ring.PaddingNone, p.Padding)
	assert.Equal(t, 2.5, p.Speed())
	assert.Equal(t, "shadow-lg", p.Class)

	p, err = ParseValues(Values{})
	require.NoError(t, err)
	assert.Nil(t, p.SpeedFactor)

	p, err = ParseValues(Values{Speed: "0"})
	require.NoError(t, err)
	require.NotNil(t, p.SpeedFactor)
	assert.Equal(t, 0.0, p.Speed())

	_, err = ParseValues(Values{Speed: "fast"})
	require.ErrorIs(t, err, ErrInvalidSpeed)
	_, err = ParseValues(Values{Speed: "NaN"})
	require.ErrorIs(t, err, ErrInvalidSpeed)
	_, err = ParseValues(Values{Size: "huge"})
	require.ErrorIs(t, err, ring.ErrUnknownSize)
	_, err = ParseValues(Values{Colors: "#12"})
	require.ErrorIs(t, err, ring.ErrInvalidColor)
}

func TestComponent_FallbackWhenImageBlank(t *testing.T) {
	for _, image := range []string{"", "   ", "\t\n"} {
		out := render(t, Props{ID: "w1", Image: image})
		assert.Contains(t, out, FallbackText)
		assert.NotContains(t, out, "<image")
	}
}

func TestComponent_ImageReference(t *testing.T) {
	out := render(t, Props{ID: "w1", Image: "https://example.com/cat.png"})
	assert.Contains(t, out, `<image`)
	assert.Contains(t, out, `xlink:href="https://example.com/cat.png"`)
	assert.Contains(t, out, `clip-path="url(#w1-clip)"`)
	assert.NotContains(t, out, FallbackText)
}

func TestComponent_ImageReferenceVerbatim(t *testing.T) {
	out := render(t, Props{ID: "w1", Image: " cat.png "})
	assert.Contains(t, out, `xlink:href=" cat.png "`)
}

func TestComponent_ZeroSpeedKept(t *testing.T) {
	p, err := ParseValues(Values{ID: "w1", Speed: "0"})
	require.NoError(t, err)
	out := render(t, p)
	assert.Contains(t, out, `data-speed="0"`)
	assert.NotContains(t, out, `data-speed="1"`)
}

func TestComponent_ImageReferenceEscaped(t *testing.T) {
	out := render(t, Props{ID: "w1", Image: `a.png?x=1&y="2"`})
	assert.Contains(t, out, `xlink:href="a.png?x=1&amp;y=&#34;2&#34;"`)
}

func TestComponent_DefaultColorsInGradients(t *testing.T) {
	out := render(t, Props{ID: "w1", Image: "cat.png"})
	for _, c := range []string{"#f137a6", "#fbe932", "#5c9eff", "#7ed21e"} {
		assert.Contains(t, out, c)
	}
	assert.Equal(t, 3, strings.Count(out, "<linearGradient"))
	assert.Equal(t, 1, strings.Count(out, "<radialGradient"))
	for i := 1; i <= 4; i++ {
		id := "w1-ring" + string(rune('0'+i))
		assert.Contains(t, out, `id="`+id+`"`)
		assert.Contains(t, out, `stroke="url(#`+id+`)"`)
	}
}

func TestComponent_SingleColorFillsEveryRing(t *testing.T) {
	out := render(t, Props{ID: "w1", Colors: []ring.Color{"#123456"}})
	// 3 + 3 + 3 + 2 gradient stops
	assert.Equal(t, 11, strings.Count(out, "#123456"))
	assert.NotContains(t, out, "#f137a6")
}

func TestComponent_SizeBuckets(t *testing.T) {
	lg := containerClasses(t, render(t, Props{ID: "w1", Size: ring.OuterLG}))
	md := containerClasses(t, render(t, Props{ID: "w1"}))
	sm := containerClasses(t, render(t, Props{ID: "w1", Size: ring.OuterSM}))

	assert.Contains(t, lg, "w-80")
	assert.Contains(t, md, "w-48")
	assert.Contains(t, sm, "w-24")
	assert.NotContains(t, lg, "w-48")
	assert.NotContains(t, lg, "w-24")
	for _, classes := range [][]string{lg, md, sm} {
		assert.Contains(t, classes, "aspect-square")
	}
}

func TestComponent_ClassMerge(t *testing.T) {
	classes := containerClasses(t, render(t, Props{ID: "w1", Class: "shadow-lg hero-card"}))
	assert.Contains(t, classes, "ringframe")
	assert.Contains(t, classes, "aspect-square")
	assert.Contains(t, classes, "w-48")
	assert.Contains(t, classes, "shadow-lg")
	assert.Contains(t, classes, "hero-card")

	overridden := containerClasses(t, render(t, Props{ID: "w1", Class: "w-80"}))
	assert.Contains(t, overridden, "w-80")
	assert.NotContains(t, overridden, "w-48")
}

func TestComponent_PassthroughAttrs(t *testing.T) {
	out := render(t, Props{ID: "w1", Attrs: map[string]string{
		"aria-label":  `me & "you"`,
		"data-x":      "1",
		"class":       "ignored",
		"onload=evil": "x",
	}})
	assert.Contains(t, out, `aria-label="me &amp; &#34;you&#34;"`)
	assert.Contains(t, out, `data-x="1"`)
	assert.NotContains(t, out, "ignored")
	assert.NotContains(t, out, "evil")
	assert.Contains(t, out, `data-ringframe="w1"`)
	assert.Contains(t, out, `data-speed="1"`)
}

func TestComponent_InlineSVGHasNoProlog(t *testing.T) {
	out := render(t, Props{ID: "w1"})
	assert.NotContains(t, out, "<?xml")
	assert.Contains(t, out, `viewBox="0 0 300 300"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>\n</div>") ||
		strings.HasSuffix(strings.TrimSpace(out), "</svg></div>"))
}

func TestComponent_RingOrderAndRotation(t *testing.T) {
	out := render(t, Props{ID: "w1", Angles: [4]float64{10, -9, 10, -8}})
	first := strings.Index(out, `data-ring="4"`)
	last := strings.Index(out, `data-ring="1"`)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, last)
	assert.Less(t, first, last, "ring 1 must be drawn on top")
	assert.Contains(t, out, `transform="rotate(10.000 150 150)"`)
	assert.Contains(t, out, `transform="rotate(-9.000 150 150)"`)
}

func TestComponent_InvalidProps(t *testing.T) {
	var buf bytes.Buffer
	err := Component(Props{ID: "w1", Colors: []ring.Color{"nope"}}).Render(context.Background(), &buf)
	require.ErrorIs(t, err, ring.ErrInvalidColor)
	assert.Empty(t, buf.String())
}

func TestComponent_Deterministic(t *testing.T) {
	p := Props{ID: "w1", Image: "cat.png", Colors: []ring.Color{"#111111", "#222222", "#333333"}}
	assert.Equal(t, render(t, p), render(t, p))
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, Props{ID: "w1", Image: "cat.png", Border: ring.BorderXL, Padding: ring.PaddingLG}))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `stroke-width="25"`)
	// 150 - 2 - 25 - 20
	assert.Contains(t, out, `r="103"`)
}
