package web

import (
	"net/http"
	"strings"
)

// maxUploadBytes bounds statement image uploads.
const maxUploadBytes = 20 << 20

func (s *Server) handleStatement(w http.ResponseWriter, r *http.Request) {
	if !s.sessionFrom(r).Role.Editor() {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart upload", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	suggestion := s.gallery.Statement(r.Context(), file, header.Header.Get("Content-Type"))
	if suggestion == nil {
		s.writeJSON(w, http.StatusOK, map[string]any{"suggestion": nil})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"suggestion": suggestion})
}

type adviceRequest struct {
	Location string `json:"location"`
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, "invalid advice payload", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Location) == "" {
		http.Error(w, "location required", http.StatusBadRequest)
		return
	}

	s.writeJSON(w, http.StatusOK, s.gallery.Advice(r.Context(), req.Location))
}
