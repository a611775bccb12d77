package widget

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"sort"
	"strconv"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// baseClasses are applied to every container ahead of the size class.
const baseClasses = "ringframe relative inline-block aspect-square"

// ContainerClass merges the computed container classes with extra. Later
// classes win when they conflict, so a caller can override the size bucket.
func ContainerClass(p Props, extra string) string {
	return twmerge.Merge(baseClasses, p.Size.Class(), extra)
}

// Component renders p as a container element wrapping an inline SVG. Errors
// from invalid props surface from Render.
func Component(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := p.WithDefaults()
		scene, err := NewScene(p)
		if err != nil {
			return err
		}
		var b strings.Builder
		b.WriteString(`<div class="`)
		b.WriteString(templ.EscapeString(ContainerClass(p, p.Class)))
		b.WriteString(`" data-ringframe="`)
		b.WriteString(templ.EscapeString(p.ID))
		b.WriteString(`" data-speed="`)
		b.WriteString(strconv.FormatFloat(p.Speed(), 'f', -1, 64))
		b.WriteString(`"`)
		writeAttrs(&b, p.Attrs)
		b.WriteString(">")
		b.WriteString(scene.inlineSVG())
		b.WriteString("</div>")
		_, err = io.WriteString(w, b.String())
		return err
	})
}

var reservedAttrs = map[string]bool{
	"class":          true,
	"data-ringframe": true,
	"data-speed":     true,
}

func writeAttrs(b *strings.Builder, attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if reservedAttrs[k] || !validAttrName(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(attrs[k]))
		b.WriteString(`"`)
	}
}

func validAttrName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == ':':
		default:
			return false
		}
	}
	return true
}

func newID() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	return "rf-" + hex.EncodeToString(buf)
}
