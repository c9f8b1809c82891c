// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views renders the HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"

	"github.com/danielhkuo/quickly-ask/models"
)

//go:embed templates/*.html
var files embed.FS

const layout = "templates/base.layout.html"

// Page names
const (
	PageIndex     = "index"
	PageLogin     = "login"
	PageDashboard = "dashboard"
	PageNewPost   = "new_post"
	PageAnswer    = "answer"
)

// Data is everything a page may show
type Data struct {
	Title       string
	Flash       string
	FormError   string
	FormData    map[string]string
	CurrentUser *models.User
	Posts       []models.Post
	Questions   []models.Question
	Question    *models.Question
}

var functions = template.FuncMap{
	"since": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return humanize.Time(t)
	},
	"markdown": markdown,
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

func markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the base layout
func New() (*Renderer, error) {
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, page := range []string{PageIndex, PageLogin, PageDashboard, PageNewPost, PageAnswer} {
		ts, err := template.New(page).Funcs(functions).ParseFS(files, layout, "templates/"+page+".page.html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}
		r.pages[page] = ts
	}
	return r, nil
}

// Render executes page into a buffer first so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data *Data) error {
	ts, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if data == nil {
		data = &Data{}
	}

	var buf bytes.Buffer
	if err := ts.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
