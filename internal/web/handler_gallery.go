package web

import (
	"errors"
	"net/http"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/service"
)

func (s *Server) handleListPhotos(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.gallery.Photos())
}

func (s *Server) handleAddPhoto(w http.ResponseWriter, r *http.Request) {
	var photo domain.Photo
	if err := readJSON(r, &photo); err != nil {
		http.Error(w, "invalid photo payload", http.StatusBadRequest)
		return
	}

	added, err := s.gallery.AddPhoto(r.Context(), s.sessionFrom(r).Role, photo)
	if err != nil {
		s.galleryError(w, "add photo", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, added)
}

func (s *Server) handleUpdatePhoto(w http.ResponseWriter, r *http.Request) {
	var photo domain.Photo
	if err := readJSON(r, &photo); err != nil {
		http.Error(w, "invalid photo payload", http.StatusBadRequest)
		return
	}
	photo.ID = r.PathValue("id")

	if err := s.gallery.UpdatePhoto(r.Context(), s.sessionFrom(r).Role, photo); err != nil {
		s.galleryError(w, "update photo", err)
		return
	}
	s.writeJSON(w, http.StatusOK, photo)
}

func (s *Server) handleDeletePhoto(w http.ResponseWriter, r *http.Request) {
	if err := s.gallery.DeletePhoto(r.Context(), s.sessionFrom(r).Role, r.PathValue("id")); err != nil {
		s.galleryError(w, "delete photo", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearPhotos(w http.ResponseWriter, r *http.Request) {
	if err := s.gallery.ClearPhotos(r.Context(), s.sessionFrom(r).Role); err != nil {
		s.galleryError(w, "clear photos", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetAbout(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.gallery.About())
}

func (s *Server) handlePublishAbout(w http.ResponseWriter, r *http.Request) {
	var content domain.AboutContent
	if err := readJSON(r, &content); err != nil {
		http.Error(w, "invalid about payload", http.StatusBadRequest)
		return
	}

	if err := s.gallery.PublishAbout(r.Context(), s.sessionFrom(r).Role, content); err != nil {
		s.galleryError(w, "publish about", err)
		return
	}
	s.writeJSON(w, http.StatusOK, content)
}

func (s *Server) galleryError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, service.ErrPhotoNotFound):
		http.Error(w, "photo not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidPhoto):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
		s.logger.Error(op+" failed", "error", err)
	}
}
