package theme

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handytechnz-cloud/Blair-Portfolio/internal/ambient"
	"github.com/handytechnz-cloud/Blair-Portfolio/internal/domain"
)

// testClock is a settable clock for driving broadcast expiry.
type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time          { return c.t }
func (c *testClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager(t *testing.T) (*Manager, *testClock, ambient.Store) {
	t.Helper()
	clock := &testClock{t: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
	slots := ambient.NewMemStore()
	m := NewManager(slots, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.now = clock.Now
	return m, clock, slots
}

func TestPreferenceDefaultsToWhite(t *testing.T) {
	m, _, _ := newTestManager(t)

	pref, err := m.Preference(context.Background())
	require.NoError(t, err)
	assert.Equal(t, White, pref)
}

func TestSelectPersistsPreference(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Select(ctx, domain.RoleGuest, Blue))

	pref, err := m.Preference(ctx)
	require.NoError(t, err)
	assert.Equal(t, Blue, pref)
}

func TestSelectRejectsBroadcastOnlyThemes(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	assert.ErrorIs(t, m.Select(ctx, domain.RoleGuest, Rainbow), ErrBroadcastOnly)
	assert.ErrorIs(t, m.Select(ctx, domain.RoleAdmin, Gold), ErrBroadcastOnly)
	assert.ErrorIs(t, m.Select(ctx, domain.RoleGuest, Theme("magenta")), ErrUnknownTheme)
}

func TestPublishRequiresAdmin(t *testing.T) {
	m, _, _ := newTestManager(t)

	_, err := m.Publish(context.Background(), domain.RoleGuest, Rainbow)
	assert.ErrorIs(t, err, ErrNotAdmin)

	_, err = m.Publish(context.Background(), domain.RoleEditor, Rainbow)
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestPublishSetsExpiryExactly180Seconds(t *testing.T) {
	m, clock, _ := newTestManager(t)

	b, err := m.Publish(context.Background(), domain.RoleAdmin, Gold)
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(180*time.Second), b.Expiry)
	assert.Equal(t, Gold, b.Theme)
}

func TestBroadcastOverridesEffectiveTheme(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Select(ctx, domain.RoleGuest, Blue))
	_, err := m.Publish(ctx, domain.RoleAdmin, Rainbow)
	require.NoError(t, err)

	effective, err := m.Effective(ctx)
	require.NoError(t, err)
	assert.Equal(t, Rainbow, effective)
}

func TestWhitePreferenceEscapesBroadcast(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	// Never-saved preference defaults to white and is exempt too.
	_, err := m.Publish(ctx, domain.RoleAdmin, Gold)
	require.NoError(t, err)

	effective, err := m.Effective(ctx)
	require.NoError(t, err)
	assert.Equal(t, White, effective)

	require.NoError(t, m.Select(ctx, domain.RoleGuest, White))
	effective, err = m.Effective(ctx)
	require.NoError(t, err)
	assert.Equal(t, White, effective)
}

func TestEffectiveRevertsAfterExpiry(t *testing.T) {
	m, clock, slots := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Select(ctx, domain.RoleGuest, Green))
	_, err := m.Publish(ctx, domain.RoleAdmin, Rainbow)
	require.NoError(t, err)

	clock.Advance(BroadcastDuration + time.Second)

	effective, err := m.Effective(ctx)
	require.NoError(t, err)
	assert.Equal(t, Green, effective)

	// The sweeper clears the shared record.
	m.sweep(ctx)
	_, ok, err := slots.Get(ctx, ambient.SlotGlobalEvent)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSweepKeepsLiveBroadcast(t *testing.T) {
	m, clock, slots := newTestManager(t)
	ctx := context.Background()

	_, err := m.Publish(ctx, domain.RoleAdmin, Black)
	require.NoError(t, err)

	clock.Advance(BroadcastDuration - time.Second)
	m.sweep(ctx)

	_, ok, err := slots.Get(ctx, ambient.SlotGlobalEvent)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOptionsConstrainedDuringBroadcast(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Select(ctx, domain.RoleGuest, Red))
	_, err := m.Publish(ctx, domain.RoleAdmin, Gold)
	require.NoError(t, err)

	options, err := m.Options(ctx, domain.RoleGuest)
	require.NoError(t, err)
	assert.Equal(t, []Theme{Gold, White}, options)

	// The owner keeps the full menu.
	options, err = m.Options(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, ManualThemes, options)

	// Selecting anything outside the constrained menu fails.
	assert.ErrorIs(t, m.Select(ctx, domain.RoleGuest, Blue), ErrBroadcastActive)
	assert.NoError(t, m.Select(ctx, domain.RoleGuest, White))
}

func TestEveryOfferedOptionIsSelectable(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Select(ctx, domain.RoleGuest, Red))
	_, err := m.Publish(ctx, domain.RoleAdmin, Gold)
	require.NoError(t, err)

	options, err := m.Options(ctx, domain.RoleGuest)
	require.NoError(t, err)
	require.Equal(t, []Theme{Gold, White}, options)

	// Taking the live broadcast theme is accepted as an acknowledgement but
	// never saved as the personal preference.
	require.NoError(t, m.Select(ctx, domain.RoleGuest, Gold))
	pref, err := m.Preference(ctx)
	require.NoError(t, err)
	assert.Equal(t, Red, pref)

	// A broadcast-only theme other than the live one is still rejected.
	assert.ErrorIs(t, m.Select(ctx, domain.RoleGuest, Rainbow), ErrBroadcastOnly)
}

func TestOptionsFullForExemptVisitor(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.Select(ctx, domain.RoleGuest, White))
	_, err := m.Publish(ctx, domain.RoleAdmin, Rainbow)
	require.NoError(t, err)

	options, err := m.Options(ctx, domain.RoleGuest)
	require.NoError(t, err)
	assert.Equal(t, ManualThemes, options)
}

func TestToggleBlendColor(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	colors, err := m.ToggleBlendColor(ctx, "red")
	require.NoError(t, err)
	assert.Equal(t, []string{"red"}, colors)

	colors, err = m.ToggleBlendColor(ctx, "blue")
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue"}, colors)

	colors, err = m.ToggleBlendColor(ctx, "green")
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue", "green"}, colors)

	// Toggling twice returns to the original set.
	_, err = m.ToggleBlendColor(ctx, "blue")
	require.NoError(t, err)
	colors, err = m.ToggleBlendColor(ctx, "blue")
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "green", "blue"}, colors)
}

func TestBlendRender(t *testing.T) {
	assert.Equal(t, Render{Mode: RenderDefault}, BlendRender(nil))
	assert.Equal(t, Render{Mode: RenderSolid, Colors: []string{"red"}}, BlendRender([]string{"red"}))
	assert.Equal(t,
		Render{Mode: RenderGradient, Colors: []string{"red", "blue", "green"}},
		BlendRender([]string{"red", "blue", "green"}))
}

func TestCorruptBroadcastRecordCleared(t *testing.T) {
	m, _, slots := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, slots.Set(ctx, ambient.SlotGlobalEvent, "{not json"))

	b, err := m.ActiveBroadcast(ctx)
	require.NoError(t, err)
	assert.Nil(t, b)

	_, ok, err := slots.Get(ctx, ambient.SlotGlobalEvent)
	require.NoError(t, err)
	assert.False(t, ok)
}
