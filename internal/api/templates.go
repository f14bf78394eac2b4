package api

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"shortDate": func(t time.Time) string { return t.Format("Jan 02") },
	"dayLabel":  func(t time.Time) string { return t.Format("Jan 02 (Mon)") },
	"longDate":  func(t time.Time) string { return t.Format("January 2, 2006") },
	"sameDay":   func(a, b time.Time) bool { return a.Format(time.DateOnly) == b.Format(time.DateOnly) },
}

func loadTemplates() *template.Template {
	return template.Must(template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.tmpl"))
}
