// Package web provides infrastructure for serving server-rendered views with
// Go templates. Templates are parsed once at startup and cloned per view, so
// a broken template fails the process before it serves traffic.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef defines a view with its template file, title, and client bundle name.
type ViewDef struct {
	Name     string
	Template string
	Title    string
	Bundle   string
}

// ViewData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title     string
	SiteTitle string
	Bundle    string
	BasePath  string
	Data      any
}

// TemplateSet holds pre-parsed templates and the values shared by every render.
type TemplateSet struct {
	views     map[string]*template.Template
	basePath  string
	siteTitle string
}

// NewTemplateSet parses the layout templates matched by layoutGlob and clones
// them once per view, parsing each view's template from viewSubdir.
func NewTemplateSet(layoutFS, viewFS fs.FS, layoutGlob, viewSubdir, basePath, siteTitle string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(funcs).ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	viewTemplates := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		_, err = t.ParseFS(viewSub, v.Template)
		if err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		viewTemplates[v.Template] = t
	}

	return &TemplateSet{
		views:     viewTemplates,
		basePath:  basePath,
		siteTitle: siteTitle,
	}, nil
}

// ErrorHandler returns an HTTP handler that renders an error view with the
// given status code.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ts.RenderStatus(w, layout, view, status, nil)
	}
}

// RenderStatus renders view with data and the given status. If rendering
// fails before anything is written, a plain-text error is sent instead.
func (ts *TemplateSet) RenderStatus(w http.ResponseWriter, layout string, view ViewDef, status int, data any) {
	t, ok := ts.views[view.Template]
	if !ok {
		http.Error(w, "template not found: "+view.Template, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, layout, ts.data(view, data)); err != nil {
		fmt.Fprintf(w, "\n<!-- render error: %s -->", template.HTMLEscapeString(err.Error()))
	}
}

func (ts *TemplateSet) data(view ViewDef, data any) ViewData {
	return ViewData{
		Title:     view.Title,
		SiteTitle: ts.siteTitle,
		Bundle:    view.Bundle,
		BasePath:  ts.basePath,
		Data:      data,
	}
}
