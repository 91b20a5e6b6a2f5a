package web

import (
	"errors"
	"net/http"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/theme"
)

type themeResponse struct {
	Effective  theme.Theme      `json:"effective"`
	Preference theme.Theme      `json:"preference"`
	Options    []theme.Theme    `json:"options"`
	Blend      theme.Render     `json:"blend"`
	Broadcast  *theme.Broadcast `json:"broadcast,omitempty"`
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := s.sessionFrom(r)

	effective, err := s.themes.Effective(ctx)
	if err != nil {
		s.themeError(w, "resolve theme", err)
		return
	}
	pref, err := s.themes.Preference(ctx)
	if err != nil {
		s.themeError(w, "load preference", err)
		return
	}
	options, err := s.themes.Options(ctx, sess.Role)
	if err != nil {
		s.themeError(w, "load options", err)
		return
	}
	colors, err := s.themes.BlendColors(ctx)
	if err != nil {
		s.themeError(w, "load blend colors", err)
		return
	}
	broadcast, err := s.themes.ActiveBroadcast(ctx)
	if err != nil {
		s.themeError(w, "load broadcast", err)
		return
	}

	s.writeJSON(w, http.StatusOK, themeResponse{
		Effective:  effective,
		Preference: pref,
		Options:    options,
		Blend:      theme.BlendRender(colors),
		Broadcast:  broadcast,
	})
}

type selectThemeRequest struct {
	Theme theme.Theme `json:"theme"`
}

func (s *Server) handleSelectTheme(w http.ResponseWriter, r *http.Request) {
	var req selectThemeRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, "invalid theme payload", http.StatusBadRequest)
		return
	}

	if err := s.themes.Select(r.Context(), s.sessionFrom(r).Role, req.Theme); err != nil {
		s.themeError(w, "select theme", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleBlendColor(w http.ResponseWriter, r *http.Request) {
	colors, err := s.themes.ToggleBlendColor(r.Context(), r.PathValue("color"))
	if err != nil {
		s.themeError(w, "toggle blend color", err)
		return
	}
	s.writeJSON(w, http.StatusOK, theme.BlendRender(colors))
}

func (s *Server) handleGetBroadcast(w http.ResponseWriter, r *http.Request) {
	broadcast, err := s.themes.ActiveBroadcast(r.Context())
	if err != nil {
		s.themeError(w, "load broadcast", err)
		return
	}
	if broadcast == nil {
		s.writeJSON(w, http.StatusOK, map[string]any{"active": false})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"active": true, "theme": broadcast.Theme, "expiry": broadcast.Expiry})
}

type publishBroadcastRequest struct {
	Theme theme.Theme `json:"theme"`
}

func (s *Server) handlePublishBroadcast(w http.ResponseWriter, r *http.Request) {
	var req publishBroadcastRequest
	if err := readJSON(r, &req); err != nil {
		http.Error(w, "invalid broadcast payload", http.StatusBadRequest)
		return
	}

	broadcast, err := s.themes.Publish(r.Context(), s.sessionFrom(r).Role, req.Theme)
	if err != nil {
		s.themeError(w, "publish broadcast", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, broadcast)
}

func (s *Server) themeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, theme.ErrNotAdmin):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, theme.ErrUnknownTheme), errors.Is(err, theme.ErrBroadcastOnly):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, theme.ErrBroadcastActive):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
		s.logger.Error(op+" failed", "error", err)
	}
}
