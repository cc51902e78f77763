package web_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/ekskog/blog-site/pkg/web"
)

var templateFS = fstest.MapFS{
	"layouts/test.html": {Data: []byte(
		`{{ define "test.html" }}<title>{{ .Title }} | {{ .SiteTitle }}</title><base href="{{ .BasePath }}/">{{ template "content" . }}<script type="application/json">{{ json .Data }}</script>{{ end }}`,
	)},
	"views/home.html":   {Data: []byte(`{{ define "content" }}<h1>Home</h1>{{ end }}`)},
	"views/search.html": {Data: []byte(`{{ define "content" }}<h1>Search {{ .Data.tag }}</h1>{{ end }}`)},
	"views/404.html":    {Data: []byte(`{{ define "content" }}<h1>Not Found</h1>{{ end }}`)},
	"views/broken.html": {Data: []byte(`{{ define "content" }}{{ .Missing }`)},
}

var testViews = []web.ViewDef{
	{Name: "home", Template: "home.html", Title: "Home", Bundle: "app"},
	{Name: "search", Template: "search.html", Title: "Search", Bundle: "app"},
}

var notFoundView = web.ViewDef{Name: "404", Template: "404.html", Title: "Not Found"}

func newTemplateSet(t *testing.T) *web.TemplateSet {
	t.Helper()
	ts, err := web.NewTemplateSet(templateFS, templateFS, "layouts/*.html", "views", "/blog", "ekskog", append(testViews, notFoundView))
	if err != nil {
		t.Fatalf("NewTemplateSet() failed: %v", err)
	}
	return ts
}

func TestNewTemplateSet_Errors(t *testing.T) {
	tests := []struct {
		name       string
		layoutGlob string
		views      []web.ViewDef
	}{
		{"invalid layout glob", "nonexistent/*.html", testViews},
		{"missing view file", "layouts/*.html", []web.ViewDef{{Template: "missing.html"}}},
		{"broken view template", "layouts/*.html", []web.ViewDef{{Template: "broken.html"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := web.NewTemplateSet(templateFS, templateFS, tt.layoutGlob, "views", "", "", tt.views)
			if err == nil {
				t.Error("NewTemplateSet() should fail")
			}
		})
	}
}

func TestRenderStatus(t *testing.T) {
	ts := newTemplateSet(t)

	w := httptest.NewRecorder()
	ts.RenderStatus(w, "test.html", testViews[1], http.StatusOK, map[string]any{"tag": "go</script>"})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := w.Body.String()
	for _, want := range []string{"<title>Search | ekskog</title>", `<base href="/blog/">`, "<h1>Search go&lt;/script&gt;</h1>"} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q should contain %q", body, want)
		}
	}
	if strings.Contains(body, `"go</script>"`) {
		t.Error("props JSON was not escaped for the script context")
	}
}

func TestRenderStatus_UnknownTemplate(t *testing.T) {
	ts := newTemplateSet(t)

	w := httptest.NewRecorder()
	ts.RenderStatus(w, "test.html", web.ViewDef{Template: "nope.html"}, http.StatusOK, nil)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestErrorHandler(t *testing.T) {
	ts := newTemplateSet(t)

	w := httptest.NewRecorder()
	ts.ErrorHandler("test.html", notFoundView, http.StatusNotFound)(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !strings.Contains(w.Body.String(), "Not Found") {
		t.Error("body should contain the error view")
	}
}
