package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/service"
)

type inquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (s *Server) handleSubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var req inquiryRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, "invalid inquiry payload", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		http.Error(w, "name, email and message are required", http.StatusBadRequest)
		return
	}

	inquiry := s.mailbox.Submit(r.Context(), req.Name, req.Email, req.Type, req.Message)
	s.writeJSON(w, http.StatusCreated, inquiry)
}

func (s *Server) handleListInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := s.mailbox.List(r.Context(), s.sessionFrom(r).Role)
	if err != nil {
		s.mailboxError(w, "list inquiries", err)
		return
	}
	if inquiries == nil {
		inquiries = []domain.Inquiry{}
	}
	s.writeJSON(w, http.StatusOK, inquiries)
}

func (s *Server) handleArchiveInquiry(w http.ResponseWriter, r *http.Request) {
	if err := s.mailbox.Archive(r.Context(), s.sessionFrom(r).Role, r.PathValue("id")); err != nil {
		s.mailboxError(w, "archive inquiry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) mailboxError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, service.ErrForbidden) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
	s.logger.Error(op+" failed", "error", err)
}
