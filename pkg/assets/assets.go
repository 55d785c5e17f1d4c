// Package assets checks which sprites are available on disk.
// The server renders with it so frames only reference sprites the web shell can load.
package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/render"
)

// FileSet is a render.AssetSet backed by image files in a directory.
type FileSet struct {
	dir    string
	lock   sync.RWMutex
	loaded map[render.AssetKey]image.Config
}

var _ render.AssetSet = &FileSet{}

func NewFileSet(dir string) *FileSet {
	return &FileSet{
		dir:    dir,
		loaded: make(map[render.AssetKey]image.Config),
	}
}

// LoadAll decodes the header of every sprite of paths.
// A sprite that fails is logged and left out, so it is drawn as a placeholder.
// It returns the number of sprites loaded.
func (s *FileSet) LoadAll(paths map[render.AssetKey]string) int {
	s.lock.Lock()
	defer s.lock.Unlock()

	for key, name := range paths {
		config, err := decodeConfig(filepath.Join(s.dir, name))
		if err != nil {
			log.Warn("Failed to load sprite %s: %v", key, err)
			delete(s.loaded, key)
			continue
		}
		s.loaded[key] = config
		log.Debug("Loaded sprite %s (%dx%d)", key, config.Width, config.Height)
	}
	log.Info("Loaded %d of %d sprites from %s", len(s.loaded), len(paths), s.dir)
	return len(s.loaded)
}

func (s *FileSet) Has(key render.AssetKey) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	_, ok := s.loaded[key]
	return ok
}

func decodeConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()

	config, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, fmt.Errorf("failed to decode %s: %v", path, err)
	}
	return config, nil
}
