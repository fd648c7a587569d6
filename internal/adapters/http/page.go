package httpadapter

import (
	"html/template"
	"net/http"

	"svw.info/sokoban/web"
)

// Index renders the level browser with every stored level checked.
func (h *Handler) Index(tmpl *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := web.IndexPage{}
		metas, err := h.UC.List(r.Context())
		if err != nil {
			page.Error = err.Error()
		}
		for _, m := range metas {
			lv, err := h.UC.Load(r.Context(), m.ID)
			if err != nil {
				continue
			}
			view := web.LevelView{ID: m.ID, Name: m.Name}
			b, rep, err := h.UC.Check(r.Context(), lv)
			if err != nil {
				view.Problem = err.Error()
			} else {
				view.Board = b.String()
				view.Valid = rep.Valid
				view.Solved = rep.Solved
				view.Problem = rep.Problem
			}
			page.Levels = append(page.Levels, view)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.ExecuteTemplate(w, "index.tmpl", page); err != nil {
			http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
		}
	}
}
