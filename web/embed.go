// Package web holds the embedded level browser page.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

// Static serves the files under static/; mount it behind StripPrefix.
func Static() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// only reachable with a malformed directory name
		panic(err)
	}
	return http.FileServerFS(sub)
}

// Templates returns the parsed page templates. They are parsed on first use.
var Templates = sync.OnceValue(func() *template.Template {
	return template.Must(template.New("").ParseFS(assets, "templates/*.tmpl"))
})

// LevelView is one level as shown on the index page.
type LevelView struct {
	ID      string
	Name    string
	Board   string
	Valid   bool
	Solved  bool
	Problem string
}

// IndexPage is the data for index.tmpl.
type IndexPage struct {
	Levels []LevelView
	Error  string
}
