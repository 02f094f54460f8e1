package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	handlersPkg "github.com/SnakeO/dominion-llc/internal/handlers"
	mw "github.com/SnakeO/dominion-llc/internal/middleware"
	"github.com/SnakeO/dominion-llc/internal/observability"
)

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		// jsonld marks a JSON document produced by seo.JSON as safe script
		// content. encoding/json escapes <, > and & so it cannot close the tag.
		"jsonld": func(s string) template.JS { return template.JS(s) },
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// templates returns the parsed set. In dev mode, templates are reparsed on each request.
func templates() (*template.Template, error) {
	if devMode {
		return parseTemplates()
	}
	if tmplCache == nil {
		return nil, fmt.Errorf("template not initialized")
	}
	return tmplCache, nil
}

// renderPage executes the base layout with page selecting the body.
func renderPage(w http.ResponseWriter, r *http.Request, page string, vm handlersPkg.PageData) {
	vm.Page = page
	renderTemplate(w, r, "base", vm)
}

// renderTemplate executes a named template (layout or htmx fragment). Output
// is buffered so a failure mid-render still yields a clean 500.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	t, err := templates()
	if err != nil {
		renderFailed(w, r, name, err)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		renderFailed(w, r, name, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func renderFailed(w http.ResponseWriter, r *http.Request, name string, err error) {
	observability.FromContext(r.Context()).Error("render failed", zap.String("template", name), zap.Error(err))
	mw.WriteError(w, r, http.StatusInternalServerError, "template error")
}

// absoluteURL builds an absolute URL for path against the configured base
// URL, falling back to the request host.
func absoluteURL(r *http.Request, path string) string {
	if site.BaseURL != "" {
		return site.BaseURL + path
	}
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host + path
}

// assetURL roots a resolver path so it works from any page.
func assetURL(p string) string {
	if p == "" || strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

func siteName() string {
	if site.Name == "" {
		return "Dominion Investors LLC"
	}
	return site.Name
}
