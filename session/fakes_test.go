package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ik5/murmur/engine"
)

type fakePlayer struct {
	asset string

	mu           sync.Mutex
	volumes      []float64
	playing      bool
	closed       int
	touchedAfter bool // SetVolume after Close
	playErr      error
}

func (p *fakePlayer) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed > 0 {
		p.touchedAfter = true
	}
	p.volumes = append(p.volumes, v)
}

func (p *fakePlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.playErr != nil {
		return p.playErr
	}
	p.playing = true
	return nil
}

func (p *fakePlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playing = false
}

func (p *fakePlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed++
	return nil
}

func (p *fakePlayer) lastVolume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.volumes) == 0 {
		return -1
	}
	return p.volumes[len(p.volumes)-1]
}

func (p *fakePlayer) state() (playing bool, closed int, touchedAfter bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.playing, p.closed, p.touchedAfter
}

var errDevice = errors.New("audio device unavailable")

// fakeProvider serves every asset except the ones listed as missing.
type fakeProvider struct {
	mu      sync.Mutex
	missing map[string]bool
	failing map[string]error
	playErr map[string]error
	players []*fakePlayer
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		missing: make(map[string]bool),
		failing: make(map[string]error),
		playErr: make(map[string]error),
	}
}

func (f *fakeProvider) Open(asset string) (Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.missing[asset] {
		return nil, fmt.Errorf("%w: %s", engine.ErrAssetNotFound, asset)
	}
	if err := f.failing[asset]; err != nil {
		return nil, err
	}
	p := &fakePlayer{asset: asset, playErr: f.playErr[asset]}
	f.players = append(f.players, p)
	return p, nil
}

func (f *fakeProvider) opened() []*fakePlayer {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*fakePlayer(nil), f.players...)
}

// preparingProvider decodes ahead of Open. Prepare for the gated asset
// blocks until release is closed.
type preparingProvider struct {
	*fakeProvider

	gated    string
	entered  chan struct{}
	release  chan struct{}
	prepared []string
}

func newPreparingProvider(gated string) *preparingProvider {
	return &preparingProvider{
		fakeProvider: newFakeProvider(),
		gated:        gated,
		entered:      make(chan struct{}),
		release:      make(chan struct{}),
	}
}

func (p *preparingProvider) Prepare(asset string) error {
	if asset == p.gated {
		close(p.entered)
		<-p.release
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.missing[asset] {
		return fmt.Errorf("%w: %s", engine.ErrAssetNotFound, asset)
	}
	p.prepared = append(p.prepared, asset)
	return nil
}

func (p *preparingProvider) preparedAssets() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]string(nil), p.prepared...)
}

// recorder is an Observer that keeps everything it is told.
type recorder struct {
	mu      sync.Mutex
	sets    [][]int
	volumes map[int][]float64
}

func newRecorder() *recorder {
	return &recorder{volumes: make(map[int][]float64)}
}

func (r *recorder) ActiveSetChanged(active []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sets = append(r.sets, active)
}

func (r *recorder) VolumeChanged(id int, v float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.volumes[id] = append(r.volumes[id], v)
}

func (r *recorder) lastSet() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.sets) == 0 {
		return nil
	}
	return r.sets[len(r.sets)-1]
}

func (r *recorder) volumesOf(id int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]float64(nil), r.volumes[id]...)
}
