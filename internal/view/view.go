// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/MKhiriev/go-movie-browser/models"
)

// Page names accepted by [Renderer.Render].
const (
	PageLogin    = "login"
	PageSignup   = "signup"
	PageHome     = "home"
	PageGenre    = "genre"
	PageMovie    = "movie"
	PageSearch   = "search"
	PageNotFound = "404"
)

const layoutFile = "templates/layout.html"

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static/*
var staticFS embed.FS

// PageData is the single payload every template receives. Pages read only the
// fields they need.
type PageData struct {
	Title    string
	Username string
	Genres   []models.Genre

	// Message is the inline form error of the login and signup pages.
	Message string

	Query  string
	Movies []models.Movie
	Genre  models.GenrePage
	Movie  models.MoviePage
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page of the embedded set. It fails on the first
// template that does not parse.
func NewRenderer() (*Renderer, error) {
	pages := []string{PageLogin, PageSignup, PageHome, PageGenre, PageMovie, PageSearch, PageNotFound}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New(page).
			Funcs(funcs).
			ParseFS(templatesFS, layoutFile, "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("error parsing template %q: %w", page, err)
		}
		r.pages[page] = tmpl
	}

	return r, nil
}

// Render executes page into w. On an execution error w may hold a partial
// page, so callers writing to a response should render into a buffer.
func (r *Renderer) Render(w io.Writer, page string, data PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}

	if data.Genres == nil {
		data.Genres = models.Genres()
	}

	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("error executing template %q: %w", page, err)
	}

	return nil
}

// Static serves the embedded stylesheet. Mount it with the "/static/" prefix
// stripped.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
