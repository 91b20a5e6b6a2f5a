package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/service"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/session"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/theme"
)

type Server struct {
	gallery  *service.GalleryService
	mailbox  *service.MailboxService
	access   *service.AccessService
	sessions *session.Registry
	themes   *theme.Manager
	boot     *service.BootReport
	mux      *http.ServeMux
	logger   *slog.Logger
}

func NewServer(
	gallery *service.GalleryService,
	mailbox *service.MailboxService,
	access *service.AccessService,
	sessions *session.Registry,
	themes *theme.Manager,
	boot *service.BootReport,
	logger *slog.Logger,
) *Server {
	s := &Server{
		gallery:  gallery,
		mailbox:  mailbox,
		access:   access,
		sessions: sessions,
		themes:   themes,
		boot:     boot,
		mux:      http.NewServeMux(),
		logger:   logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/status", s.handleStatus)

	s.mux.HandleFunc("GET /api/photos", s.handleListPhotos)
	s.mux.HandleFunc("POST /api/photos", s.handleAddPhoto)
	s.mux.HandleFunc("PUT /api/photos/{id}", s.handleUpdatePhoto)
	s.mux.HandleFunc("DELETE /api/photos/{id}", s.handleDeletePhoto)
	s.mux.HandleFunc("DELETE /api/photos", s.handleClearPhotos)

	s.mux.HandleFunc("GET /api/store", s.handleStoreListings)
	s.mux.HandleFunc("GET /api/about", s.handleGetAbout)
	s.mux.HandleFunc("PUT /api/about", s.handlePublishAbout)

	s.mux.HandleFunc("POST /api/inquiries", s.handleSubmitInquiry)
	s.mux.HandleFunc("GET /api/inquiries", s.handleListInquiries)
	s.mux.HandleFunc("DELETE /api/inquiries/{id}", s.handleArchiveInquiry)

	s.mux.HandleFunc("POST /api/session", s.handleSignIn)
	s.mux.HandleFunc("GET /api/session", s.handleGetSession)
	s.mux.HandleFunc("DELETE /api/session", s.handleSignOut)

	s.mux.HandleFunc("GET /api/theme", s.handleGetTheme)
	s.mux.HandleFunc("PUT /api/theme", s.handleSelectTheme)
	s.mux.HandleFunc("POST /api/theme/blend/{color}", s.handleToggleBlendColor)
	s.mux.HandleFunc("GET /api/broadcast", s.handleGetBroadcast)
	s.mux.HandleFunc("POST /api/broadcast", s.handlePublishBroadcast)

	s.mux.HandleFunc("POST /api/studio/statement", s.handleStatement)
	s.mux.HandleFunc("POST /api/studio/advice", s.handleAdvice)

	s.mux.HandleFunc("GET /api/keys", s.handleListKeys)
	s.mux.HandleFunc("POST /api/keys", s.handleMintKey)
	s.mux.HandleFunc("DELETE /api/keys/{id}", s.handleRevokeKey)
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.mux)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// sessionFrom resolves the request's bearer token. Requests without a valid
// token browse as an anonymous guest.
func (s *Server) sessionFrom(r *http.Request) domain.Session {
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token == "" {
		return domain.Session{Role: domain.RoleGuest}
	}

	sess, ok := s.sessions.Get(token)
	if !ok {
		return domain.Session{Role: domain.RoleGuest}
	}
	return sess
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"degraded":         s.boot.Degraded(),
		"failedPartitions": s.boot.Failed(),
	})
}
