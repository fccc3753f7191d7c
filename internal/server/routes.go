package server

import (
	"errors"
	"net/http"

	"github.com/redpen-dev/redpen/internal/corrector"
	"github.com/redpen-dev/redpen/internal/svcctx"
)

// registerRoutes sets up the HTML form routes. The JSON API routes come
// from the endpoint registry.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /correct", s.handleCorrectForm)
}

// indexData feeds the index template.
type indexData struct {
	Text      string
	Error     string
	HasResult bool
	Result    corrector.Result
}

// handleIndex renders the empty correction form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, indexData{})
}

// handleCorrectForm corrects submitted form text and re-renders the page
// with the result. Validation problems render inline rather than as HTTP
// errors.
func (s *Server) handleCorrectForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	text := r.PostFormValue("text")

	svc := svcctx.CorrectorFrom(r.Context())
	if svc == nil {
		http.Error(w, "corrector not initialized", http.StatusServiceUnavailable)
		return
	}

	result, err := svc.Correct(r.Context(), text)
	if err != nil {
		var ve *corrector.ValidationError
		if errors.As(err, &ve) {
			s.renderIndex(w, indexData{Text: text, Error: ve.Reason})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.renderIndex(w, indexData{Text: text, HasResult: true, Result: result})
}

func (s *Server) renderIndex(w http.ResponseWriter, data indexData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("template render failed", "error", err)
	}
}
