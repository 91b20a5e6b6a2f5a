package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/pricing"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/studio"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/theme"
)

var (
	ErrForbidden     = errors.New("role not allowed to perform this action")
	ErrPhotoNotFound = errors.New("photo not found")
	ErrInvalidPhoto  = errors.New("photo must have a url and title")
)

// photoRepository is the subset of store.PhotoStore that GalleryService requires.
type photoRepository interface {
	LoadAll(ctx context.Context) ([]domain.Photo, error)
	SaveAll(ctx context.Context, photos []domain.Photo) error
	Add(ctx context.Context, photo domain.Photo) error
	Update(ctx context.Context, photo domain.Photo) error
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// aboutRepository is the subset of store.AboutStore that GalleryService requires.
type aboutRepository interface {
	Load(ctx context.Context) (*domain.AboutContent, error)
	Save(ctx context.Context, content domain.AboutContent) error
}

// GalleryService owns the photo collection and about content. It serves from
// an in-memory copy seeded at boot; writes mutate memory first and persist
// fire-and-forget, so a failed save never rolls back what the visitor sees.
type GalleryService struct {
	photoStore photoRepository
	aboutStore aboutRepository
	themes     *theme.Manager
	assistant  studio.Assistant
	logger     *slog.Logger

	mu     sync.RWMutex
	photos []domain.Photo
	about  domain.AboutContent
}

func NewGalleryService(
	photoStore photoRepository,
	aboutStore aboutRepository,
	themes *theme.Manager,
	assistant studio.Assistant,
	logger *slog.Logger,
) *GalleryService {
	return &GalleryService{
		photoStore: photoStore,
		aboutStore: aboutStore,
		themes:     themes,
		assistant:  assistant,
		logger:     logger,
		photos:     SamplePhotos(),
		about:      DefaultAbout(),
	}
}

// loadPhotos seeds the in-memory collection from the photos partition. An
// empty partition is written back with the built-in samples, so later
// per-photo edits find their target records.
func (s *GalleryService) loadPhotos(ctx context.Context) error {
	photos, err := s.photoStore.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(photos) == 0 {
		s.mu.RLock()
		seed := slices.Clone(s.photos)
		s.mu.RUnlock()
		if err := s.photoStore.SaveAll(ctx, seed); err != nil {
			s.logger.Error("failed to seed photos partition", "error", err)
		}
		return nil
	}

	s.mu.Lock()
	s.photos = photos
	s.mu.Unlock()
	return nil
}

// loadAbout seeds the about content, keeping the default when the partition
// is empty.
func (s *GalleryService) loadAbout(ctx context.Context) error {
	content, err := s.aboutStore.Load(ctx)
	if err != nil {
		return err
	}
	if content == nil {
		return nil
	}

	s.mu.Lock()
	s.about = *content
	s.mu.Unlock()
	return nil
}

// Photos returns the current collection, newest first.
func (s *GalleryService) Photos() []domain.Photo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.photos)
}

// AddPhoto publishes a new photo to the front of the gallery. Owner/Editor
// only.
func (s *GalleryService) AddPhoto(ctx context.Context, role domain.Role, photo domain.Photo) (domain.Photo, error) {
	if !role.Editor() {
		return domain.Photo{}, ErrForbidden
	}
	if photo.URL == "" || photo.Title == "" {
		return domain.Photo{}, ErrInvalidPhoto
	}
	if photo.Price < 0 {
		return domain.Photo{}, fmt.Errorf("%w: price must not be negative", ErrInvalidPhoto)
	}
	if photo.ID == "" {
		photo.ID = uuid.NewString()
	}
	if photo.Category == "" {
		photo.Category = CategoryGeneral
	}

	s.mu.Lock()
	s.photos = append([]domain.Photo{photo}, s.photos...)
	s.mu.Unlock()

	if err := s.photoStore.Add(ctx, photo); err != nil {
		s.logger.Error("failed to persist photo", "id", photo.ID, "error", err)
	}
	return photo, nil
}

// UpdatePhoto replaces a photo's record. Owner/Editor only.
func (s *GalleryService) UpdatePhoto(ctx context.Context, role domain.Role, photo domain.Photo) error {
	if !role.Editor() {
		return ErrForbidden
	}
	if photo.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidPhoto)
	}

	s.mu.Lock()
	idx := slices.IndexFunc(s.photos, func(p domain.Photo) bool { return p.ID == photo.ID })
	if idx < 0 {
		s.mu.Unlock()
		return ErrPhotoNotFound
	}
	s.photos[idx] = photo
	s.mu.Unlock()

	if err := s.photoStore.Update(ctx, photo); err != nil {
		s.logger.Error("failed to persist photo update", "id", photo.ID, "error", err)
	}
	return nil
}

// DeletePhoto removes one photo. Owner/Editor only; absent ids are a no-op.
func (s *GalleryService) DeletePhoto(ctx context.Context, role domain.Role, id string) error {
	if !role.Editor() {
		return ErrForbidden
	}

	s.mu.Lock()
	s.photos = slices.DeleteFunc(s.photos, func(p domain.Photo) bool { return p.ID == id })
	s.mu.Unlock()

	if err := s.photoStore.Remove(ctx, id); err != nil {
		s.logger.Error("failed to persist photo removal", "id", id, "error", err)
	}
	return nil
}

// ClearPhotos empties the gallery. Owner/Editor only.
func (s *GalleryService) ClearPhotos(ctx context.Context, role domain.Role) error {
	if !role.Editor() {
		return ErrForbidden
	}

	s.mu.Lock()
	s.photos = nil
	s.mu.Unlock()

	if err := s.photoStore.Clear(ctx); err != nil {
		s.logger.Error("failed to persist gallery clear", "error", err)
	}
	return nil
}

// Listing is a storefront entry: a priced photo with its promotional display
// price.
type Listing struct {
	domain.Photo
	DisplayPrice float64 `json:"displayPrice"`
	Free         bool    `json:"free"`
}

// Listings returns the priced photos with display prices under the effective
// theme. A display price of zero flips the listing to the free-acquisition
// flow.
func (s *GalleryService) Listings(ctx context.Context) ([]Listing, error) {
	active, err := s.themes.Effective(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := make([]Listing, 0)
	for _, p := range s.photos {
		if p.Price <= 0 {
			continue
		}
		display := pricing.DisplayPrice(p.Price, active)
		listings = append(listings, Listing{Photo: p, DisplayPrice: display, Free: pricing.Free(display)})
	}
	return listings, nil
}

// About returns the current about content.
func (s *GalleryService) About() domain.AboutContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.about
}

// PublishAbout overwrites the about content wholesale. Owner/Editor only.
func (s *GalleryService) PublishAbout(ctx context.Context, role domain.Role, content domain.AboutContent) error {
	if !role.Editor() {
		return ErrForbidden
	}

	s.mu.Lock()
	s.about = content
	s.mu.Unlock()

	if err := s.aboutStore.Save(ctx, content); err != nil {
		s.logger.Error("failed to persist about content", "error", err)
	}
	return nil
}

// Statement asks the collaborator for an artistic statement. Any failure
// degrades to no result; the caller shows nothing.
func (s *GalleryService) Statement(ctx context.Context, image io.Reader, mimeType string) *studio.Suggestion {
	if s.assistant == nil {
		return nil
	}

	suggestion, err := s.assistant.ArtisticStatement(ctx, image, mimeType)
	if err != nil {
		s.logger.Warn("artistic statement unavailable", "error", err)
		return nil
	}
	return suggestion
}

// Advice asks the collaborator for location shooting advice. Failures degrade
// to a fixed apology; this never returns an error.
func (s *GalleryService) Advice(ctx context.Context, location string) *studio.Advice {
	if s.assistant == nil {
		return &studio.Advice{Text: studio.UnavailableAdvice, Sources: []string{}}
	}

	advice, err := s.assistant.ShootingAdvice(ctx, location)
	if err != nil {
		s.logger.Warn("shooting advice unavailable", "location", location, "error", err)
		return &studio.Advice{Text: studio.AdviceFailed, Sources: []string{}}
	}
	return advice
}
