package paperdoll

import "github.com/google/uuid"

// SpriteFactory validates and stores an ordered recipe of layer templates and
// stamps out independent sprite instances. The factory exclusively owns the
// templates; every stamped sprite gets its own layer clones and a fresh
// [SelectionState], so instances never share mutable selection data.
//
// A factory is typically constructed once during application startup and
// passed to whatever creates sprite instances — there is no package-level
// singleton.
type SpriteFactory struct {
	templates []*Layer
	namespace Namespace
}

// NewSpriteFactory validates recipe and creates a factory registering its
// composites into ns. The recipe must contain at least one layer (the base
// layer is mandatory) with recipe-unique names; violations fail with
// [ConstructionError]. A nil ns defaults to a private [ImageRegistry].
func NewSpriteFactory(ns Namespace, recipe ...*Layer) (*SpriteFactory, error) {
	if len(recipe) == 0 {
		return nil, constructErrorf("SpriteFactory", "recipe is empty, a base layer is mandatory")
	}
	seen := make(map[string]bool, len(recipe))
	for i, layer := range recipe {
		if layer == nil {
			return nil, constructErrorf("SpriteFactory", "recipe entry %d is nil", i)
		}
		if seen[layer.Name()] {
			return nil, constructErrorf("SpriteFactory", "duplicate layer name %q in recipe", layer.Name())
		}
		seen[layer.Name()] = true
	}
	if ns == nil {
		ns = NewImageRegistry()
	}
	return &SpriteFactory{
		templates: append([]*Layer(nil), recipe...),
		namespace: ns,
	}, nil
}

// NumLayers returns the number of layers in the recipe.
func (f *SpriteFactory) NumLayers() int { return len(f.templates) }

// Namespace returns the image namespace composites are registered into.
func (f *SpriteFactory) Namespace() Namespace { return f.namespace }

// NewSprite stamps a new sprite instance: it clones every template layer,
// creates a fresh SelectionState, binds it to all clones, registers the
// initial composite (rendered at st = at = 0) under imageName in the
// namespace, and returns a controller bound to the clones and state.
func (f *SpriteFactory) NewSprite(imageName string) (*SpriteController, error) {
	if imageName == "" {
		return nil, constructErrorf("SpriteFactory", "sprite image name must be non-empty")
	}
	state := NewSelectionState()
	layers := make([]*Layer, len(f.templates))
	for i, tmpl := range f.templates {
		clone := tmpl.Clone()
		if err := clone.BindState(state); err != nil {
			return nil, err
		}
		layers[i] = clone
	}
	ctrl := &SpriteController{
		id:        uuid.New(),
		imageName: imageName,
		layers:    layers,
		state:     state,
		namespace: f.namespace,
	}
	if err := ctrl.Refresh(0, 0); err != nil {
		return nil, err
	}
	return ctrl, nil
}
