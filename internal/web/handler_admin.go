package web

import (
	"errors"
	"net/http"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/service"
)

func (s *Server) handleListKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := s.access.List(r.Context(), s.sessionFrom(r).Role)
	if err != nil {
		s.accessError(w, "list keys", err)
		return
	}
	if keys == nil {
		keys = []domain.AccessKey{}
	}
	s.writeJSON(w, http.StatusOK, keys)
}

type mintKeyRequest struct {
	Label string      `json:"label"`
	Role  domain.Role `json:"role"`
}

func (s *Server) handleMintKey(w http.ResponseWriter, r *http.Request) {
	var req mintKeyRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, "invalid key payload", http.StatusBadRequest)
		return
	}

	key, err := s.access.Mint(r.Context(), s.sessionFrom(r).Role, req.Label, req.Role)
	if err != nil {
		s.accessError(w, "mint key", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, key)
}

func (s *Server) handleRevokeKey(w http.ResponseWriter, r *http.Request) {
	if err := s.access.Revoke(r.Context(), s.sessionFrom(r).Role, r.PathValue("id")); err != nil {
		s.accessError(w, "revoke key", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) accessError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, service.ErrInvalidKey):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
		s.logger.Error(op+" failed", "error", err)
	}
}
