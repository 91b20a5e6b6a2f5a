package service

import "github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"

// CategoryGeneral is the only category the gallery ships with.
const CategoryGeneral = "Portfolio"

// SamplePhotos is the built-in collection shown until the owner uploads their
// own work, and the fallback when the photos partition cannot be loaded.
func SamplePhotos() []domain.Photo {
	return []domain.Photo{
		{
			ID:          "1",
			URL:         "https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?q=80&w=2070&auto=format&fit=crop",
			Title:       "Alpine Silence",
			Category:    CategoryGeneral,
			Description: "A study of light and shadow across the Swiss Alps at dawn.",
			Settings:    &domain.CameraSettings{Shutter: "1/200", Aperture: "f/8", ISO: "100", Lens: "24-70mm f/2.8 GM"},
		},
		{
			ID:          "2",
			URL:         "https://images.unsplash.com/photo-1502082553048-f009c37129b9?q=80&w=2070&auto=format&fit=crop",
			Title:       "Golden Canopy",
			Category:    CategoryGeneral,
			Description: "Looking up into the heart of an ancient redwood forest.",
			Settings:    &domain.CameraSettings{Shutter: "1/50", Aperture: "f/4", ISO: "400", Lens: "16-35mm f/2.8 GM"},
		},
		{
			ID:          "3",
			URL:         "https://images.unsplash.com/photo-1449034446853-66c86144b0ad?q=80&w=2070&auto=format&fit=crop",
			Title:       "The Bridge",
			Category:    CategoryGeneral,
			Description: "Symmetry and fog over the Golden Gate.",
			Settings:    &domain.CameraSettings{Shutter: "1/1000", Aperture: "f/2.8", ISO: "100", Lens: "35mm f/1.4 GM"},
		},
		{
			ID:          "4",
			URL:         "https://images.unsplash.com/photo-1470770841072-f978cf4d019e?q=80&w=2070&auto=format&fit=crop",
			Title:       "Lakeside Echo",
			Category:    CategoryGeneral,
			Description: "Mirror reflections in the Norwegian fjords.",
			Settings:    &domain.CameraSettings{Shutter: "2.5s", Aperture: "f/11", ISO: "50", Lens: "24mm f/1.4 GM"},
		},
	}
}

// DefaultAbout seeds the about page until the owner publishes their own.
func DefaultAbout() domain.AboutContent {
	return domain.AboutContent{
		Name:         "Blair",
		RoleLabel:    "Visual Storyteller & Photographer",
		IntroHeading: "Capturing the Unseen Moments.",
		IntroBody1:   "I am Blair, a photographer driven by the pursuit of light, shadow, and the quiet stories told in between. My work isn't just about snapping a shutter; it's about freezing a feeling.",
		IntroBody2:   "With a focus on minimalism and high-contrast aesthetics, I specialize in commercial and portrait photography. Every image I produce is a deliberate composition.",
		ImageURL:     "https://images.unsplash.com/photo-1554048612-b6a482bc67e5?q=80&w=2070&auto=format&fit=crop",
		Philosophy: []domain.PhilosophyItem{
			{Title: "Simplicity", Description: "Finding beauty in the essential. Stripping away the noise to let the subject speak for itself."},
			{Title: "Precision", Description: "Technical excellence meets creative intuition. Every pixel and exposure is intentional."},
			{Title: "Connection", Description: "Photography is a bridge. It's about the relationship between the viewer and the subject."},
		},
		Equipment: []string{"Sony A1", "Leica Q3", "35mm f/1.4 GM", "85mm f/1.2 GM", "50mm f/1.2 GM"},
	}
}
