package sprites

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/cbodonnell/krismas/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas holds the textures that loaded successfully, keyed by texture name.
type Atlas struct {
	textures map[string]*ebiten.Image
}

// Load reads <dir>/<key>.png for every key. A texture that fails to load is
// logged and left out so the renderer falls back to a placeholder.
func Load(dir string, keys ...string) *Atlas {
	a := &Atlas{
		textures: make(map[string]*ebiten.Image),
	}
	for _, key := range keys {
		img, err := loadTexture(dir, key)
		if err != nil {
			log.Warn("Using placeholder for texture %s: %v", key, err)
			continue
		}
		a.textures[key] = img
	}
	return a
}

func loadTexture(dir, key string) (*ebiten.Image, error) {
	path := filepath.Join(dir, key+".png")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %v", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Get returns the texture for key, if it loaded.
func (a *Atlas) Get(key string) (*ebiten.Image, bool) {
	if a == nil {
		return nil, false
	}
	img, ok := a.textures[key]
	return img, ok
}
