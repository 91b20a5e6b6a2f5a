// Package theme implements the visitor color themes, the composite blend
// mode, and the time-boxed atmosphere broadcast that can override every
// visitor's theme at once.
package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/ambient"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
)

type Theme string

const (
	White  Theme = "white"
	Red    Theme = "red"
	Yellow Theme = "yellow"
	Blue   Theme = "blue"
	Green  Theme = "green"
	Orange Theme = "orange"
	Black  Theme = "black"
	Blend  Theme = "blend"

	// Rainbow and Gold are reachable only through a broadcast, never by
	// direct selection.
	Rainbow Theme = "rainbow"
	Gold    Theme = "gold"
)

// ManualThemes are the themes a visitor may pick directly.
var ManualThemes = []Theme{White, Red, Yellow, Blue, Green, Orange, Black, Blend}

var allThemes = append(slices.Clone(ManualThemes), Rainbow, Gold)

func Valid(t Theme) bool {
	return slices.Contains(allThemes, t)
}

// BroadcastOnly reports whether the theme is reachable only via Publish.
func BroadcastOnly(t Theme) bool {
	return t == Rainbow || t == Gold
}

var (
	ErrUnknownTheme    = errors.New("unknown theme")
	ErrBroadcastOnly   = errors.New("theme is broadcast-only")
	ErrBroadcastActive = errors.New("selection locked while a broadcast is active")
	ErrNotAdmin        = errors.New("only the owner may publish a broadcast")
)

// BroadcastDuration is how long a published atmosphere event stays live.
const BroadcastDuration = 3 * time.Minute

// PollInterval bounds how stale any observer's view of the broadcast can be.
const PollInterval = time.Second

// Broadcast is the shared atmosphere record visible to every visitor.
type Broadcast struct {
	Theme  Theme     `json:"theme"`
	Expiry time.Time `json:"expiry"`
}

// Manager owns theme preference, blend colors, and the broadcast record, all
// persisted through the injected ambient store.
type Manager struct {
	slots  ambient.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewManager(slots ambient.Store, logger *slog.Logger) *Manager {
	return &Manager{slots: slots, logger: logger, now: time.Now}
}

// Preference returns the visitor's saved theme, defaulting to white if none
// was ever saved.
func (m *Manager) Preference(ctx context.Context) (Theme, error) {
	value, ok, err := m.slots.Get(ctx, ambient.SlotTheme)
	if err != nil {
		return "", err
	}
	if !ok || !Valid(Theme(value)) || BroadcastOnly(Theme(value)) {
		return White, nil
	}
	return Theme(value), nil
}

// Select saves t as the visitor's personal preference. While a broadcast is
// live, non-exempt visitors may only take the broadcast theme or white.
// Picking the live broadcast theme itself is an acknowledgement, not a
// preference: broadcast-only themes are never persisted.
func (m *Manager) Select(ctx context.Context, role domain.Role, t Theme) error {
	if !Valid(t) {
		return fmt.Errorf("%w: %s", ErrUnknownTheme, t)
	}

	if BroadcastOnly(t) {
		b, err := m.ActiveBroadcast(ctx)
		if err != nil {
			return err
		}
		if b != nil && b.Theme == t {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrBroadcastOnly, t)
	}

	options, err := m.Options(ctx, role)
	if err != nil {
		return err
	}
	if !slices.Contains(options, t) {
		return ErrBroadcastActive
	}

	return m.slots.Set(ctx, ambient.SlotTheme, string(t))
}

// BlendColors returns the ordered list of selected blend color ids.
func (m *Manager) BlendColors(ctx context.Context) ([]string, error) {
	value, ok, err := m.slots.Get(ctx, ambient.SlotBlendColors)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var colors []string
	if err := json.Unmarshal([]byte(value), &colors); err != nil {
		m.logger.Warn("discarding unreadable blend colors", "error", err)
		return nil, nil
	}
	return colors, nil
}

// ToggleBlendColor adds the color if absent and removes it if present,
// returning the resulting list. Order of the remaining colors is preserved.
func (m *Manager) ToggleBlendColor(ctx context.Context, color string) ([]string, error) {
	colors, err := m.BlendColors(ctx)
	if err != nil {
		return nil, err
	}

	if slices.Contains(colors, color) {
		colors = slices.DeleteFunc(colors, func(c string) bool { return c == color })
	} else {
		colors = append(colors, color)
	}

	out, err := json.Marshal(colors)
	if err != nil {
		return nil, fmt.Errorf("failed to encode blend colors: %w", err)
	}
	if err := m.slots.Set(ctx, ambient.SlotBlendColors, string(out)); err != nil {
		return nil, err
	}

	return colors, nil
}

// Publish starts an atmosphere event: every visitor's theme is overridden by
// t for BroadcastDuration, except visitors whose saved preference is white.
func (m *Manager) Publish(ctx context.Context, role domain.Role, t Theme) (*Broadcast, error) {
	if role != domain.RoleAdmin {
		return nil, ErrNotAdmin
	}
	if !Valid(t) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTheme, t)
	}

	b := &Broadcast{Theme: t, Expiry: m.now().Add(BroadcastDuration)}
	blob, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode broadcast: %w", err)
	}
	if err := m.slots.Set(ctx, ambient.SlotGlobalEvent, string(blob)); err != nil {
		return nil, err
	}

	m.logger.Info("atmosphere event published", "theme", t, "expiry", b.Expiry)
	return b, nil
}

// ActiveBroadcast returns the live broadcast, or nil if none is set or the
// record has expired. Expired records are left for the sweeper to clear.
func (m *Manager) ActiveBroadcast(ctx context.Context) (*Broadcast, error) {
	value, ok, err := m.slots.Get(ctx, ambient.SlotGlobalEvent)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	b := &Broadcast{}
	if err := json.Unmarshal([]byte(value), b); err != nil {
		m.logger.Warn("clearing unreadable broadcast record", "error", err)
		if cerr := m.slots.Clear(ctx, ambient.SlotGlobalEvent); cerr != nil {
			m.logger.Error("failed to clear broadcast record", "error", cerr)
		}
		return nil, nil
	}

	if !b.Expiry.After(m.now()) {
		return nil, nil
	}
	return b, nil
}

// Effective resolves the theme a visitor actually sees: the broadcast theme
// while one is live, unless the saved preference is exactly white (the escape
// hatch), in which case the preference wins.
func (m *Manager) Effective(ctx context.Context) (Theme, error) {
	pref, err := m.Preference(ctx)
	if err != nil {
		return "", err
	}

	b, err := m.ActiveBroadcast(ctx)
	if err != nil {
		return "", err
	}
	if b != nil && pref != White {
		return b.Theme, nil
	}
	return pref, nil
}

// Options lists the themes the visitor's menu may offer right now. During a
// broadcast, non-exempt visitors other than the owner get only the broadcast
// theme and the white escape option.
func (m *Manager) Options(ctx context.Context, role domain.Role) ([]Theme, error) {
	b, err := m.ActiveBroadcast(ctx)
	if err != nil {
		return nil, err
	}
	if b == nil || role == domain.RoleAdmin {
		return slices.Clone(ManualThemes), nil
	}

	pref, err := m.Preference(ctx)
	if err != nil {
		return nil, err
	}
	if pref == White {
		return slices.Clone(ManualThemes), nil
	}

	if b.Theme == White {
		return []Theme{White}, nil
	}
	return []Theme{b.Theme, White}, nil
}

// Run sweeps the broadcast record every PollInterval and clears it once
// expired, reverting every visitor to their saved preference. Blocks until
// ctx is done.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep(ctx)
		}
	}
}

func (m *Manager) sweep(ctx context.Context) {
	value, ok, err := m.slots.Get(ctx, ambient.SlotGlobalEvent)
	if err != nil {
		m.logger.Error("broadcast sweep failed", "error", err)
		return
	}
	if !ok {
		return
	}

	b := Broadcast{}
	if err := json.Unmarshal([]byte(value), &b); err == nil && b.Expiry.After(m.now()) {
		return
	}

	if err := m.slots.Clear(ctx, ambient.SlotGlobalEvent); err != nil {
		m.logger.Error("failed to clear expired broadcast", "error", err)
		return
	}
	m.logger.Info("atmosphere event expired", "theme", b.Theme)
}
