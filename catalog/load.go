// SPDX-License-Identifier: EPL-2.0

package catalog

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
)

// SoundsDir is where bare file names in a catalog file are looked up.
const SoundsDir = "Sounds"

// entry is one item of a catalog file. Both the native keys and the
// fileName/isPremium/iconUrl keys of older catalogs are understood.
type entry struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Asset       string `yaml:"asset"`
	FileName    string `yaml:"fileName"`
	Category    string `yaml:"category"`
	Premium     bool   `yaml:"premium"`
	IsPremium   bool   `yaml:"isPremium"`
	Icon        string `yaml:"icon"`
	IconURL     string `yaml:"iconUrl"`
}

func (e entry) track() Track {
	t := Track{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Asset:       e.Asset,
		Category:    e.Category,
		Premium:     e.Premium || e.IsPremium,
		Icon:        e.Icon,
	}
	if t.Asset == "" && e.FileName != "" {
		t.Asset = path.Join(SoundsDir, e.FileName)
	}
	if t.Icon == "" {
		t.Icon = e.IconURL
	}
	return t
}

// Parse reads a YAML or JSON list of tracks.
func Parse(data []byte) (*Static, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	tracks := make([]Track, len(entries))
	for i, e := range entries {
		tracks[i] = e.track()
	}
	return New(tracks)
}

// Load reads and parses name from fsys.
func Load(fsys fs.FS, name string) (*Static, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// LoadOrDefault is Load that falls back to Defaults when the file is
// missing, broken or empty.
func LoadOrDefault(fsys fs.FS, name string, logger *zap.Logger) *Static {
	c, err := Load(fsys, name)
	if err == nil && len(c.tracks) > 0 {
		return c
	}

	if err != nil {
		logger.Warn("using built-in catalog", zap.String("file", name), zap.Error(err))
	} else {
		logger.Warn("using built-in catalog", zap.String("file", name), zap.String("reason", "empty"))
	}

	c, err = New(Defaults())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}
