package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/session"
)

type signInRequest struct {
	Credential string `json:"credential"`
}

type signInResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Label string `json:"label"`
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, "invalid sign-in payload", http.StatusBadRequest)
		return
	}

	token, sess, err := s.sessions.SignIn(r.Context(), req.Credential)
	if err != nil {
		if errors.Is(err, session.ErrEmptyCredential) {
			http.Error(w, "credential required", http.StatusBadRequest)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		s.logger.Error("sign-in failed", "error", err)
		return
	}

	s.writeJSON(w, http.StatusOK, signInResponse{Token: token, Role: string(sess.Role), Label: sess.Label})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.sessionFrom(r))
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		s.sessions.SignOut(token)
	}
	w.WriteHeader(http.StatusNoContent)
}
