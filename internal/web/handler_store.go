package web

import "net/http"

func (s *Server) handleStoreListings(w http.ResponseWriter, r *http.Request) {
	listings, err := s.gallery.Listings(r.Context())
	if err != nil {
		http.Error(w, "failed to load store", http.StatusInternalServerError)
		s.logger.Error("store listings failed", "error", err)
		return
	}
	s.writeJSON(w, http.StatusOK, listings)
}
