package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"svw.info/sokoban/internal/domain"
	"svw.info/sokoban/internal/ports"
	"svw.info/sokoban/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/validate", h.handleValidate)
		r.Get("/levels", h.handleList)
		r.Post("/levels", h.handleSave)
		r.Get("/levels/{id}", h.handleLoad)
		r.Delete("/levels/{id}", h.handleDelete)
		r.Get("/levels/{id}/check", h.handleCheck)
	})
}

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResp{Error: msg})
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ---- Validate ----

type validateReq struct {
	Rows []string `json:"rows"`
}

type checkResp struct {
	Report domain.Report `json:"report"`
	Board  string        `json:"board"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	h.check(w, r, &domain.Level{Rows: req.Rows})
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	lv, err := h.UC.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	h.check(w, r, lv)
}

func (h *Handler) check(w http.ResponseWriter, r *http.Request, lv *domain.Level) {
	b, rep, err := h.UC.Check(r.Context(), lv)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, checkResp{Report: rep, Board: b.String()})
}

// ---- Save / Load / List / Delete ----

type saveResp struct {
	ID string `json:"id"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var lv domain.Level
	if err := json.NewDecoder(r.Body).Decode(&lv); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := h.UC.Save(r.Context(), &lv); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, saveResp{ID: lv.ID})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	lv, err := h.UC.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, lv)
}

type listResp struct {
	Levels []domain.LevelMeta `json:"levels"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ls, err := h.UC.List(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	if ls == nil {
		ls = []domain.LevelMeta{}
	}
	writeJSON(w, http.StatusOK, listResp{Levels: ls})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.UC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
