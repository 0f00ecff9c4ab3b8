// Package toml reads asset catalogs and configuration from TOML files.
package toml

import (
	"bytes"
	_ "embed"
	"fmt"
	iofs "io/fs"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/morebutton"
	"github.com/pelletier/go-toml/v2"
)

//go:embed assets.toml
var defaultAssets []byte

// catalogFile is the on-disk layout of an asset pack.
type catalogFile struct {
	Assets []assetDTO `toml:"asset"`
}

type assetDTO struct {
	Name      string        `toml:"name"`
	Width     int           `toml:"width"`
	Frames    int           `toml:"frames"`
	Keyframes []keyframeDTO `toml:"keyframes"`
}

type keyframeDTO struct {
	Frame int    `toml:"frame"`
	Glyph string `toml:"glyph"`
}

// DecodeCatalog parses an asset pack. Unknown keys are rejected so typos in
// hand-written packs surface early. The result is not validated against the
// assets the button requires; see morebutton.Catalog.Validate.
func DecodeCatalog(data []byte) (morebutton.Catalog, error) {
	var f catalogFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := make(morebutton.Catalog, len(f.Assets))
	for _, a := range f.Assets {
		if a.Name == "" {
			return nil, fmt.Errorf("asset without name: %w", morebutton.ErrValidation)
		}
		if _, dup := c[a.Name]; dup {
			return nil, fmt.Errorf("asset %q defined twice: %w", a.Name, morebutton.ErrValidation)
		}
		asset := morebutton.Asset{
			Name:      a.Name,
			Width:     a.Width,
			Frames:    a.Frames,
			Keyframes: make([]morebutton.Keyframe, len(a.Keyframes)),
		}
		for i, kf := range a.Keyframes {
			asset.Keyframes[i] = morebutton.Keyframe{Frame: kf.Frame, Glyph: kf.Glyph}
		}
		if err := asset.Validate(); err != nil {
			return nil, err
		}
		c[a.Name] = asset
	}
	return c, nil
}

// DefaultCatalog returns the built-in asset pack.
func DefaultCatalog() morebutton.Catalog {
	c, err := DecodeCatalog(defaultAssets)
	if err != nil {
		panic(fmt.Sprintf("toml: built-in assets: %v", err))
	}
	return c
}

// LoadCatalogs layers every asset pack in fsys matching pattern over the
// built-in catalog. Packs are applied in path order, so later files win.
// The merged catalog is validated before it is returned.
func LoadCatalogs(fsys iofs.FS, pattern string) (morebutton.Catalog, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid asset pattern %q: %w", pattern, morebutton.ErrValidation)
	}
	var paths []string
	err := doublestar.GlobWalk(fsys, pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("match asset packs: %w", err)
	}
	sort.Strings(paths)

	c := DefaultCatalog()
	for _, path := range paths {
		data, err := iofs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read asset pack: %w", err)
		}
		pack, err := DecodeCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		c = c.Merge(pack)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
