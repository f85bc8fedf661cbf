package paperdoll

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Namespace is the host-managed image namespace that [SpriteFactory.NewSprite]
// registers composites into. Other parts of the host application reference a
// composite by the name it was registered under. Registering is treated as a
// side-effecting external call; paperdoll provides [ImageRegistry] as a
// ready-made implementation.
type Namespace interface {
	Register(name string, v Visual)
}

// ImageRegistry is a named store of visuals. Lookups of unregistered names
// return a 1x1 magenta placeholder instead of nil, so a typo shows up
// on-screen rather than as a crash.
type ImageRegistry struct {
	visuals map[string]Visual
}

// NewImageRegistry creates an empty registry.
func NewImageRegistry() *ImageRegistry {
	return &ImageRegistry{visuals: make(map[string]Visual)}
}

// Register stores v under name, replacing any previous entry. A nil visual
// removes the entry.
func (r *ImageRegistry) Register(name string, v Visual) {
	if v == nil {
		delete(r.visuals, name)
		return
	}
	r.visuals[name] = v
}

// Visual returns the visual registered under name. If the name doesn't exist,
// it logs a warning (debug only) and returns a 1x1 magenta placeholder.
func (r *ImageRegistry) Visual(name string) Visual {
	if v, ok := r.visuals[name]; ok {
		return v
	}
	debugf("registry entry %q not found, using magenta placeholder", name)
	return ensureMagentaImage()
}

// Has reports whether a visual is registered under name.
func (r *ImageRegistry) Has(name string) bool {
	_, ok := r.visuals[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *ImageRegistry) Names() []string {
	names := make([]string, 0, len(r.visuals))
	for name := range r.visuals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// magenta placeholder singleton (no sync.Once — paperdoll is single-threaded)
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}
