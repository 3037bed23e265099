// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/polls/visibility"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageFuncs = template.FuncMap{
	// "3 days ago"; now comes from the page data, never the wall clock
	"ago": func(t, now time.Time) string {
		return humanize.RelTime(t, now, "ago", "from now")
	},
	"recent": visibility.IsRecentlyPublished,
	"votes": func(n int) string {
		return humanize.Comma(int64(n)) + " " + english.PluralWord(n, "vote", "")
	},
	"percent": func(share float64) string {
		return strconv.FormatFloat(share*100, 'f', 0, 64) + "%"
	},
}

var pages = template.Must(template.New("pages").Funcs(pageFuncs).ParseFS(templateFS, "templates/*.html"))

// renderPage renders into a buffer first; template errors become a 500
func renderPage(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render page", "page", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func renderNotFound(w http.ResponseWriter) {
	renderPage(w, http.StatusNotFound, "notfound", nil)
}
