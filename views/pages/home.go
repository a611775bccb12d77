package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"ringframe/internal/viewmodel"
	"ringframe/internal/widget"
)

// HomePage renders the demo page: a configuration form, one widget per size
// bucket and enough page height to scroll through.
func HomePage(data viewmodel.HomePage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		e := templ.EscapeString[string]
		if _, err := io.WriteString(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>`+e(data.Title)+`</title>
<link rel="stylesheet" href="/static/ringframe.css">
<script defer src="/static/ringframe.js"></script>
</head>
<body>
<main class="page">
<h1>`+e(data.Title)+`</h1>
<form method="GET" action="/" class="controls">
<label>Image <input name="image" value="`+e(data.Image)+`"></label>
<label>Colors <input name="colors" value="`+e(data.Colors)+`" placeholder="#f137a6,#fbe932"></label>
<label>Border <input name="border" value="`+e(data.Border)+`" placeholder="sm|md|lg|xl"></label>
<label>Padding <input name="padding" value="`+e(data.Padding)+`" placeholder="sm|md|lg|none"></label>
<label>Speed <input name="speed" value="`+e(data.Speed)+`" placeholder="1"></label>
<button type="submit">Apply</button>
</form>
`); err != nil {
			return err
		}
		if data.Error != "" {
			if _, err := io.WriteString(w, `<p class="error">`+e(data.Error)+"</p>\n"); err != nil {
				return err
			}
		}
		for _, dw := range data.Widgets {
			if _, err := io.WriteString(w, `<section class="demo"><h2>`+e(dw.Label)+"</h2>\n"); err != nil {
				return err
			}
			if err := widget.Component(dw.Props).Render(ctx, w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "</section>\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}
