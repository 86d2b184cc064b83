// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ik5/murmur/audio"
	"github.com/ik5/murmur/formats"
)

// Provider turns asset references into voices on a bus. Each asset is
// decoded once; later opens share the decoded clip.
type Provider struct {
	assets   fs.FS
	bus      *Bus
	registry *audio.Registry
	logger   *zap.Logger

	mu    sync.Mutex
	clips map[string]*audio.Clip
}

type Option func(*Provider)

// WithRegistry replaces the default decoder set from formats.NewRegistry.
func WithRegistry(r *audio.Registry) Option {
	return func(p *Provider) { p.registry = r }
}

func WithLogger(l *zap.Logger) Option {
	return func(p *Provider) { p.logger = l }
}

func NewProvider(assets fs.FS, bus *Bus, opts ...Option) *Provider {
	p := &Provider{
		assets: assets,
		bus:    bus,
		logger: zap.NewNop(),
		clips:  make(map[string]*audio.Clip),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.registry == nil {
		p.registry = formats.NewRegistry()
	}
	return p
}

// Open returns a stopped voice at volume 0 attached to the bus.
// Missing files and unknown extensions fail with ErrAssetNotFound.
func (p *Provider) Open(asset string) (*Voice, error) {
	clip, err := p.clip(asset)
	if err != nil {
		return nil, err
	}

	v := &Voice{asset: asset, bus: p.bus, loop: clip.Loop()}
	if err := p.bus.attach(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Prepare decodes asset into the clip cache without opening a voice, so a
// later Open is cheap.
func (p *Provider) Prepare(asset string) error {
	_, err := p.clip(asset)
	return err
}

// Cached reports whether asset has already been decoded.
func (p *Provider) Cached(asset string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, ok := p.clips[assetPath(asset)]
	return ok
}

func (p *Provider) clip(asset string) (*audio.Clip, error) {
	name := assetPath(asset)
	if !fs.ValidPath(name) || name == "." {
		return nil, fmt.Errorf("%w: invalid path %q", ErrAssetNotFound, asset)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.clips[name]; ok {
		return c, nil
	}

	dec, err := p.registry.ForPath(name)
	if errors.Is(err, audio.ErrUnknownFormat) {
		return nil, fmt.Errorf("%w: no decoder for %q", ErrAssetNotFound, asset)
	}
	if err != nil {
		return nil, err
	}

	f, err := p.assets.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, asset)
	}
	if err != nil {
		return nil, fmt.Errorf("opening asset %s: %w", asset, err)
	}
	defer f.Close()

	start := time.Now()
	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding asset %s: %w", asset, err)
	}
	clip, err := audio.LoadClip(src, p.bus.SampleRate(), BusChannels)
	if err != nil {
		return nil, fmt.Errorf("loading asset %s: %w", asset, err)
	}

	p.clips[name] = clip
	p.logger.Debug("asset decoded",
		zap.String("asset", name),
		zap.Int("frames", clip.Frames()),
		zap.Duration("took", time.Since(start)),
	)
	return clip, nil
}

// assetPath turns catalog references like "/Sounds/rain.mp3" into fs.FS names.
func assetPath(asset string) string {
	return path.Clean(strings.TrimPrefix(strings.ReplaceAll(asset, "\\", "/"), "/"))
}
