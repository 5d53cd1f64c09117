package assets

import (
	"errors"
	"fmt"
)

// AssetResolver looks assets up in user directories before the embedded
// set. Directories are searched in the order given; the embedded loader
// always comes last.
type AssetResolver struct {
	layers []AssetLoader
}

// NewAssetResolver creates an AssetResolver over basePaths. Empty paths
// are skipped, so NewAssetResolver("") serves embedded assets only.
// Returns ErrInvalidBasePath when a non-empty path is not a directory.
func NewAssetResolver(basePaths ...string) (*AssetResolver, error) {
	r := &AssetResolver{}
	for _, p := range basePaths {
		if p == "" {
			continue
		}
		loader, err := NewFilesystemLoader(p)
		if err != nil {
			return nil, err
		}
		r.layers = append(r.layers, loader)
	}
	r.layers = append(r.layers, NewEmbeddedLoader())
	return r, nil
}

// LoadStyle returns the first style named name across layers.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(name, AssetLoader.LoadStyle)
}

// LoadTemplate returns the first template named name across layers.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(name, AssetLoader.LoadTemplate)
}

// first walks the layers until one has name. Only not-found errors move
// on to the next layer; invalid names and read failures stop the walk.
func (r *AssetResolver) first(name string, load func(AssetLoader, string) (string, error)) (string, error) {
	var err error
	for _, l := range r.layers {
		var content string
		content, err = load(l, name)
		if err == nil {
			return content, nil
		}
		if !notFound(err) {
			return "", err
		}
	}
	return "", fmt.Errorf("searched %d location(s): %w", len(r.layers), err)
}

func notFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}

// HasCustomLoader reports whether any user directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.layers) > 1
}

var _ AssetLoader = (*AssetResolver)(nil)
