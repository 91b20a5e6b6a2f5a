package domain

import "time"

// Role classifies what a signed-in visitor may do. GUEST is the default for
// any visitor, including the soft sign-in path.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleGuest  Role = "GUEST"
)

// Editor reports whether the role may modify gallery and about content.
func (r Role) Editor() bool {
	return r == RoleAdmin || r == RoleEditor
}

// CameraSettings records the exposure details shown alongside a photo.
type CameraSettings struct {
	Shutter  string `json:"shutter"`
	Aperture string `json:"aperture"`
	ISO      string `json:"iso"`
	Lens     string `json:"lens"`
}

type Photo struct {
	ID          string          `json:"id"`
	URL         string          `json:"url"`
	Title       string          `json:"title"`
	Category    string          `json:"category"`
	Price       float64         `json:"price,omitempty"`
	Description string          `json:"description,omitempty"`
	Settings    *CameraSettings `json:"settings,omitempty"`
}

// AccessKey is a manually distributed credential minted by the Owner.
// Keys are never mutated after creation, only revoked.
type AccessKey struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Role      Role      `json:"role"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the resolved identity of one signed-in visitor.
type Session struct {
	Role  Role   `json:"role"`
	Label string `json:"label"`
}

type PhilosophyItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AboutContent is the full "about" page payload, overwritten wholesale on
// publish.
type AboutContent struct {
	Name         string           `json:"name"`
	RoleLabel    string           `json:"roleLabel"`
	IntroHeading string           `json:"introHeading"`
	IntroBody1   string           `json:"introDescription1"`
	IntroBody2   string           `json:"introDescription2"`
	ImageURL     string           `json:"imageUrl"`
	Philosophy   []PhilosophyItem `json:"philosophy"`
	Equipment    []string         `json:"equipment"`
}

type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
