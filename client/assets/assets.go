package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/Quelsed/azngameahun/pkg/log"
	"github.com/Quelsed/azngameahun/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSet holds the sprites of the desktop client.
type ImageSet struct {
	images map[render.AssetKey]*ebiten.Image
}

var _ render.AssetSet = &ImageSet{}

// LoadImages decodes every sprite of paths from dir.
// Sprites that fail to load are logged and drawn as placeholders.
func LoadImages(dir string, paths map[render.AssetKey]string) *ImageSet {
	s := &ImageSet{
		images: make(map[render.AssetKey]*ebiten.Image),
	}
	if dir == "" {
		log.Info("No assets directory, drawing placeholders")
		return s
	}

	for key, name := range paths {
		img, err := loadImage(filepath.Join(dir, name))
		if err != nil {
			log.Warn("Failed to load sprite %s: %v", key, err)
			continue
		}
		s.images[key] = img
	}
	log.Info("Loaded %d of %d sprites from %s", len(s.images), len(paths), dir)
	return s
}

func loadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %v", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func (s *ImageSet) Has(key render.AssetKey) bool {
	_, ok := s.images[key]
	return ok
}

func (s *ImageSet) Image(key render.AssetKey) (*ebiten.Image, bool) {
	img, ok := s.images[key]
	return img, ok
}
