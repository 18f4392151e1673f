// Package assets loads sprites, the background and the menu font once and
// hands out shared, read-only handles.
package assets

import (
	"bytes"
	"image"
	_ "image/png" // register PNG decoder
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/pacman/internal/domain/actor"
	"github.com/younwookim/pacman/internal/fault"
)

// SpritePaths names the image for each orientation of one kind. Paths may
// repeat; the player uses one image for every direction.
type SpritePaths struct {
	Up    string `yaml:"up" koanf:"up"`
	Down  string `yaml:"down" koanf:"down"`
	Left  string `yaml:"left" koanf:"left"`
	Right string `yaml:"right" koanf:"right"`
}

// For returns the path bound to o.
func (p SpritePaths) For(o actor.Orientation) string {
	switch o {
	case actor.Up:
		return p.Up
	case actor.Down:
		return p.Down
	case actor.Left:
		return p.Left
	case actor.Right:
		return p.Right
	default:
		return ""
	}
}

// Manifest lists every file the game needs, relative to the asset root.
type Manifest struct {
	Sprites    map[actor.Kind]SpritePaths
	Background string
	// Font is a TTF/OTF file. Empty selects the bundled Go Regular face.
	Font string
}

// Library holds loaded assets. It is immutable after Load.
type Library struct {
	images  map[string]*ebiten.Image
	sprites map[actor.Kind]*actor.SpriteSet
	font    *text.GoTextFaceSource
	bgPath  string
}

// Load reads everything m names from fsys. Any missing or undecodable file
// aborts the load with a resource load failure.
func Load(fsys fs.FS, m Manifest) (*Library, error) {
	lib := &Library{
		images:  make(map[string]*ebiten.Image),
		sprites: make(map[actor.Kind]*actor.SpriteSet, len(m.Sprites)),
		bgPath:  m.Background,
	}

	for _, kind := range actor.Kinds() {
		paths, ok := m.Sprites[kind]
		if !ok {
			continue
		}
		var set actor.SpriteSet
		for _, o := range actor.Orientations() {
			img, err := lib.load(fsys, paths.For(o))
			if err != nil {
				return nil, err
			}
			set[o] = img
		}
		if err := set.Complete(kind); err != nil {
			return nil, err
		}
		lib.sprites[kind] = &set
	}

	if m.Background != "" {
		if _, err := lib.load(fsys, m.Background); err != nil {
			return nil, err
		}
	}

	src, err := loadFont(fsys, m.Font)
	if err != nil {
		return nil, err
	}
	lib.font = src

	return lib, nil
}

func (l *Library) load(fsys fs.FS, p string) (*ebiten.Image, error) {
	if p == "" {
		return nil, fault.ResourceLoad(p, fs.ErrInvalid)
	}
	p = path.Clean(p)
	if img, ok := l.images[p]; ok {
		return img, nil
	}

	f, err := fsys.Open(p)
	if err != nil {
		return nil, fault.ResourceLoad(p, err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fault.ResourceLoad(p, err)
	}
	img := ebiten.NewImageFromImage(decoded)
	l.images[p] = img
	return img, nil
}

func loadFont(fsys fs.FS, p string) (*text.GoTextFaceSource, error) {
	data := goregular.TTF
	if p != "" {
		b, err := fs.ReadFile(fsys, path.Clean(p))
		if err != nil {
			return nil, fault.ResourceLoad(p, err)
		}
		data = b
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fault.ResourceLoad(p, err)
	}
	return src, nil
}

// Sprites returns the shared sprite set of kind.
func (l *Library) Sprites(kind actor.Kind) (*actor.SpriteSet, error) {
	set, ok := l.sprites[kind]
	if !ok {
		return nil, fault.ResourceLoad(kind.String(), fs.ErrNotExist)
	}
	return set, nil
}

// Image returns a loaded image by path.
func (l *Library) Image(p string) (*ebiten.Image, error) {
	img, ok := l.images[path.Clean(p)]
	if !ok {
		return nil, fault.ResourceLoad(p, fs.ErrNotExist)
	}
	return img, nil
}

// Background returns the background image named by the manifest.
func (l *Library) Background() (*ebiten.Image, error) {
	return l.Image(l.bgPath)
}

// Face returns a face of the loaded font at size pixels.
func (l *Library) Face(size float64) text.Face {
	return &text.GoTextFace{Source: l.font, Size: size}
}

// ImageCount reports how many distinct images were decoded.
func (l *Library) ImageCount() int { return len(l.images) }
