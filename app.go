// SPDX-License-Identifier: EPL-2.0

package murmur

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/murmur/analytics"
	"github.com/ik5/murmur/catalog"
	"github.com/ik5/murmur/session"
	"github.com/ik5/murmur/store"
)

// Deps are the collaborators an App is built from. Catalog, Store and
// Provider are required.
type Deps struct {
	Catalog  catalog.Catalog
	Store    *store.Store
	Provider session.Provider

	Tracker  analytics.Tracker
	Logger   *zap.Logger
	Observer session.Observer

	// OnSleep runs after the sleep timer has stopped every sound.
	OnSleep func()

	// Now is used for premium expiry. Nil means time.Now.
	Now func() time.Time
}

// App is the mixer as a user sees it: the catalog, the live mix, the sleep
// timer and saved mixes, with preferences applied.
type App struct {
	catalog catalog.Catalog
	store   *store.Store
	tracker analytics.Tracker
	logger  *zap.Logger
	now     func() time.Time

	session *session.Session
	timer   *session.SleepTimer

	mu    sync.RWMutex
	prefs store.Preferences
}

// TrackResult is the outcome of starting one sound of a mix.
type TrackResult struct {
	ID      int
	Outcome session.Outcome
	Err     error
}

func New(d Deps) *App {
	if d.Tracker == nil {
		d.Tracker = analytics.Nop
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	a := &App{
		catalog: d.Catalog,
		store:   d.Store,
		tracker: d.Tracker,
		logger:  d.Logger,
		now:     d.Now,
		prefs:   store.DefaultPreferences(),
	}

	reg := session.NewRegistry(d.Provider, session.WithRegistryLogger(d.Logger.Named("registry")))
	opts := []session.Option{session.WithLogger(d.Logger.Named("session"))}
	if d.Observer != nil {
		opts = append(opts, session.WithObserver(d.Observer))
	}
	a.session = session.New(reg, opts...)
	timerOpts := []session.TimerOption{session.WithTimerLogger(d.Logger.Named("timer"))}
	if d.OnSleep != nil {
		timerOpts = append(timerOpts, session.WithOnFire(d.OnSleep))
	}
	a.timer = session.NewSleepTimer(a.session, timerOpts...)
	return a
}

// Load prepares the app for a new run: sounds left over from an earlier run
// are stopped and the stored preferences are applied. It returns the tracks
// the user's tier may browse.
func (a *App) Load(ctx context.Context) ([]catalog.Track, error) {
	a.session.StopAll()

	if err := a.store.InitPreferences(ctx); err != nil {
		return nil, err
	}
	p, err := a.store.Preferences(ctx)
	if err != nil {
		return nil, err
	}
	a.apply(p)

	if a.session.Premium() {
		return a.catalog.All(ctx)
	}
	return a.catalog.Free(ctx)
}

func (a *App) apply(p store.Preferences) {
	a.mu.Lock()
	a.prefs = p
	a.mu.Unlock()

	premium := p.PremiumActive(a.now())
	a.session.SetPremium(premium)
	a.session.SetTargetVolume(p.DefaultVolume)

	tier := "free"
	if premium {
		tier = "premium"
	}
	a.tracker.SetUserProperty("tier", tier)
}

// Preferences returns the preferences in effect.
func (a *App) Preferences() store.Preferences {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.prefs
}

func (a *App) Premium() bool { return a.session.Premium() }

func (a *App) Catalog() catalog.Catalog { return a.catalog }

func (a *App) track(ctx context.Context, id int) (catalog.Track, error) {
	t, ok, err := a.catalog.ByID(ctx, id)
	if err != nil {
		return catalog.Track{}, err
	}
	if !ok {
		return catalog.Track{}, fmt.Errorf("%w: %d", ErrUnknownTrack, id)
	}
	return t, nil
}

// Toggle starts or stops a sound with the configured toggle fade.
func (a *App) Toggle(ctx context.Context, id int) (session.Outcome, error) {
	t, err := a.track(ctx, id)
	if err != nil {
		return session.Failed, err
	}

	out, err := a.session.ToggleSound(ctx, t, a.Preferences().ToggleFade())
	a.tracker.Track(analytics.SoundToggled, map[string]string{
		"sound_id":   strconv.Itoa(id),
		"sound_name": t.Name,
		"outcome":    out.String(),
	})
	return out, err
}

func (a *App) SetVolume(id int, volume float64) error {
	return a.session.SetVolume(id, volume)
}

// Remove fades a sound out with the configured remove fade.
func (a *App) Remove(ctx context.Context, id int) error {
	return a.session.RemoveSound(ctx, id, a.Preferences().RemoveFade())
}

func (a *App) StopAll() {
	a.session.StopAll()
	a.tracker.Track(analytics.StopAll, nil)
}

// Active lists playing ids in activation order.
func (a *App) Active() []int { return a.session.Active() }

func (a *App) Snapshot() []session.Playing { return a.session.Snapshot() }

// Wait blocks until running fade-ins end.
func (a *App) Wait() { a.session.Wait() }

// StartTimer arms the sleep timer. Zero minutes means the preferred default.
func (a *App) StartTimer(minutes int) error {
	d := time.Duration(minutes) * time.Minute
	if minutes == 0 {
		d = a.Preferences().TimerDuration()
	}
	return a.StartTimerFor(d)
}

// StartTimerFor arms the sleep timer with an exact duration.
func (a *App) StartTimerFor(d time.Duration) error {
	if err := a.timer.Start(d); err != nil {
		return err
	}
	a.tracker.Track(analytics.TimerStarted, map[string]string{"duration": d.String()})
	return nil
}

// StopTimer reports whether an armed timer was cancelled.
func (a *App) StopTimer() bool {
	if !a.timer.Cancel() {
		return false
	}
	a.tracker.Track(analytics.TimerStopped, nil)
	return true
}

func (a *App) Timer() session.TimerState { return a.timer.State() }

// SaveMix stores the playing sounds, in the order they were started, under
// name.
func (a *App) SaveMix(ctx context.Context, name string) (store.Mix, error) {
	name = strings.TrimSpace(name)
	ids := a.session.Active()
	if name == "" || len(ids) == 0 {
		return store.Mix{}, ErrEmptyMix
	}

	m, err := a.store.SaveMix(ctx, store.Mix{Name: name, SoundIDs: ids})
	if err != nil {
		return store.Mix{}, err
	}
	a.tracker.Track(analytics.MixSaved, map[string]string{
		"mix_id": m.ID,
		"sounds": store.FormatSoundIDs(ids),
	})
	return m, nil
}

// PlayMix replaces the live mix with a saved one. Sounds no longer in the
// catalog are skipped; the free tier cap still applies. There is one result
// per started sound.
func (a *App) PlayMix(ctx context.Context, id string) ([]TrackResult, error) {
	m, err := a.store.Mix(ctx, id)
	if err != nil {
		return nil, err
	}

	a.session.StopAll()

	fade := a.Preferences().ToggleFade()
	var results []TrackResult
	for _, sid := range m.SoundIDs {
		t, err := a.track(ctx, sid)
		if errors.Is(err, ErrUnknownTrack) {
			a.logger.Warn("mix references unknown sound", zap.String("mix", m.ID), zap.Int("id", sid))
			continue
		}
		if err != nil {
			return results, err
		}
		if slices.Contains(a.session.Active(), sid) {
			// listed twice; a second toggle would stop it
			continue
		}
		out, err := a.session.ToggleSound(ctx, t, fade)
		results = append(results, TrackResult{ID: sid, Outcome: out, Err: err})
	}

	if _, err := a.store.Touch(ctx, m.ID); err != nil {
		a.logger.Warn("updating mix last used", zap.String("mix", m.ID), zap.Error(err))
	}
	a.tracker.Track(analytics.MixPlayed, map[string]string{"mix_id": m.ID})
	return results, nil
}

// ToggleFavorite flips the favorite flag of a mix and returns the stored
// result.
func (a *App) ToggleFavorite(ctx context.Context, id string) (store.Mix, error) {
	m, err := a.store.Mix(ctx, id)
	if err != nil {
		return store.Mix{}, err
	}
	m.Favorite = !m.Favorite
	if m, err = a.store.SaveMix(ctx, m); err != nil {
		return store.Mix{}, err
	}
	a.tracker.Track(analytics.MixFavoriteToggled, map[string]string{
		"mix_id":   m.ID,
		"favorite": strconv.FormatBool(m.Favorite),
	})
	return m, nil
}

func (a *App) DeleteMix(ctx context.Context, id string) error {
	if err := a.store.DeleteMix(ctx, id); err != nil {
		return err
	}
	a.tracker.Track(analytics.MixDeleted, map[string]string{"mix_id": id})
	return nil
}

func (a *App) Mixes(ctx context.Context) ([]store.Mix, error) {
	return a.store.Mixes(ctx)
}

func (a *App) FavoriteMixes(ctx context.Context) ([]store.Mix, error) {
	return a.store.FavoriteMixes(ctx)
}

// UnlockPremium turns premium on and ads off for good. It stands in for a
// completed purchase.
func (a *App) UnlockPremium(ctx context.Context) error {
	p := a.Preferences()
	p.Premium = true
	p.PremiumExpiry = time.Time{}
	p.AdsEnabled = false
	if err := a.store.SavePreferences(ctx, p); err != nil {
		return err
	}
	a.apply(p)
	a.tracker.Track(analytics.PremiumUnlocked, nil)
	return nil
}

// SavePreferences stores p and applies it. The premium fields are taken
// from the current preferences; only UnlockPremium changes them.
func (a *App) SavePreferences(ctx context.Context, p store.Preferences) error {
	cur := a.Preferences()
	p.Premium, p.PremiumExpiry = cur.Premium, cur.PremiumExpiry
	if err := a.store.SavePreferences(ctx, p); err != nil {
		return err
	}
	a.apply(p)
	a.tracker.Track(analytics.SettingsSaved, nil)
	return nil
}

// ResetPreferences restores the defaults but keeps premium.
func (a *App) ResetPreferences(ctx context.Context) error {
	cur := a.Preferences()
	p := store.DefaultPreferences()
	p.Premium, p.PremiumExpiry = cur.Premium, cur.PremiumExpiry
	if p.Premium {
		p.AdsEnabled = false
	}
	if err := a.store.SavePreferences(ctx, p); err != nil {
		return err
	}
	a.apply(p)
	a.tracker.Track(analytics.SettingsReset, nil)
	return nil
}

// Close disarms the timer, lets running fades finish and stops every sound.
// The store is left open.
func (a *App) Close() {
	a.timer.Close()
	a.session.Wait()
	a.session.StopAll()
}
