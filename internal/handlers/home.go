package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ringframe/internal/ring"
	"ringframe/internal/viewmodel"
	"ringframe/internal/widget"
	"ringframe/views/pages"
)

const demoImage = "/static/portrait.svg"

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
}

func (h *HomeHandler) home(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	values := widgetValues(r)
	if _, ok := q["image"]; !ok {
		values.Image = demoImage
	}
	data := viewmodel.HomePage{
		Title:   "ringframe",
		Image:   values.Image,
		Colors:  values.Colors,
		Border:  values.Border,
		Padding: values.Padding,
		Speed:   values.Speed,
	}

	values.ID = ""
	values.Size = ""
	base, err := widget.ParseValues(values)
	if err != nil {
		log.Printf("demo page invalid options: %v", err)
		data.Error = err.Error()
		base = widget.Props{Image: values.Image}
	}
	for _, size := range ring.OuterSizes() {
		p := base
		p.ID = "demo-" + string(size)
		p.Size = size
		data.Widgets = append(data.Widgets, viewmodel.DemoWidget{
			Label: string(size),
			Props: p,
		})
	}
	render(w, r, pages.HomePage(data))
}

func widgetValues(r *http.Request) widget.Values {
	q := r.URL.Query()
	return widget.Values{
		ID:      q.Get("id"),
		Image:   q.Get("image"),
		Colors:  q.Get("colors"),
		Size:    q.Get("size"),
		Border:  q.Get("border"),
		Padding: q.Get("padding"),
		Speed:   q.Get("speed"),
		Class:   q.Get("class"),
	}
}
