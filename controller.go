package paperdoll

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// GroupedOption is one entry of an option group: which layer declares the
// option, under which key, and its spec.
type GroupedOption struct {
	Layer string
	Key   string
	Spec  *OptionSpec
}

// OptionGroup collects all options sharing one display name, for UI layout.
type OptionGroup struct {
	Name    string
	Options []GroupedOption
}

// SpriteController is the facade the presentation layer talks to. It is a
// thin read/write view over exactly one sprite's cloned layers and
// SelectionState; it owns no data of its own beyond its instance identity.
type SpriteController struct {
	id        uuid.UUID
	imageName string
	layers    []*Layer
	state     *SelectionState
	namespace Namespace
}

// ID returns the sprite instance's unique identity.
func (c *SpriteController) ID() uuid.UUID { return c.id }

// ImageName returns the name the composite is registered under.
func (c *SpriteController) ImageName() string { return c.imageName }

// Layers returns the sprite's layers in recipe order.
// The returned slice MUST NOT be mutated by the caller.
func (c *SpriteController) Layers() []*Layer { return c.layers }

// State returns the sprite's SelectionState.
func (c *SpriteController) State() *SelectionState { return c.state }

// OptionsByGroup returns the sprite's option specs grouped by display name,
// preserving the recipe's layer order and each layer's option declaration
// order. Options on different layers that share a display name (a "Color"
// label repeated per layer, say) land in the same group.
func (c *SpriteController) OptionsByGroup() []OptionGroup {
	var groups []OptionGroup
	index := make(map[string]int)
	for _, layer := range c.layers {
		for _, key := range layer.OptionKeys() {
			spec, _ := layer.Option(key)
			entry := GroupedOption{Layer: layer.Name(), Key: key, Spec: spec}
			if i, ok := index[spec.DisplayName()]; ok {
				groups[i].Options = append(groups[i].Options, entry)
				continue
			}
			index[spec.DisplayName()] = len(groups)
			groups = append(groups, OptionGroup{
				Name:    spec.DisplayName(),
				Options: []GroupedOption{entry},
			})
		}
	}
	return groups
}

// layer returns the controller's layer named name.
func (c *SpriteController) layer(name string) (*Layer, error) {
	for _, l := range c.layers {
		if l.Name() == name {
			return l, nil
		}
	}
	return nil, &UnknownOptionError{Layer: name}
}

// Randomize draws a uniformly random index in [1, size] for every option
// across every layer and applies it via SetSelection. Randomization always
// produces a raw index; it never runs text validators.
func (c *SpriteController) Randomize() error {
	for _, l := range c.layers {
		for _, key := range l.OptionKeys() {
			spec, _ := l.Option(key)
			idx := rand.IntN(spec.Size()) + 1
			if err := c.state.SetSelection(l.Name(), key, idx, spec.Size()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Increment advances the selection of (layer, optionKey) by one, wrapping at
// the option's size.
func (c *SpriteController) Increment(layer, optionKey string) error {
	l, err := c.layer(layer)
	if err != nil {
		return err
	}
	return l.IncrementSelection(optionKey)
}

// Decrement moves the selection of (layer, optionKey) back by one, wrapping
// from 1 to the option's size.
func (c *SpriteController) Decrement(layer, optionKey string) error {
	l, err := c.layer(layer)
	if err != nil {
		return err
	}
	return l.DecrementSelection(optionKey)
}

// Toggle flips a Boolean option between its two values. Applying it to any
// other kind fails with [InvalidStateError].
func (c *SpriteController) Toggle(layer, optionKey string) error {
	l, err := c.layer(layer)
	if err != nil {
		return err
	}
	spec, err := l.Option(optionKey)
	if err != nil {
		return err
	}
	if spec.Kind() != KindBoolean {
		return invalidStatef("Toggle", "option %s/%s is %s, not Boolean", layer, optionKey, spec.Kind())
	}
	return l.IncrementSelection(optionKey)
}

// SetText stores text on a Text or ValidatableText option, truncating to the
// option's MaxLen in runes when one is set. For a ValidatableText option the
// validator is re-run and the per-instance valid flag updated; the text is
// stored either way so the user can see and correct an invalid value.
// Validation failure is not an error.
func (c *SpriteController) SetText(layer, optionKey, text string) error {
	l, err := c.layer(layer)
	if err != nil {
		return err
	}
	spec, err := l.Option(optionKey)
	if err != nil {
		return err
	}
	if !spec.isText() {
		return invalidStatef("SetText", "option %s/%s is %s, not a text kind", layer, optionKey, spec.Kind())
	}
	if max := spec.MaxLen(); max > 0 {
		if runes := []rune(text); len(runes) > max {
			text = string(runes[:max])
		}
	}
	c.state.SetText(layer, optionKey, text)
	if spec.Kind() == KindValidatableText {
		c.state.SetValid(layer, optionKey, spec.validator(text))
	}
	return nil
}

// Valid reports the validity flag of (layer, optionKey). Non-text options and
// never-validated text are always valid.
func (c *SpriteController) Valid(layer, optionKey string) bool {
	return c.state.Valid(layer, optionKey)
}

// Composite renders every layer at the given host clocks and draws the
// results on top of each other in recipe order. The composite image is sized
// to the largest layer visual; layers whose callbacks return a nil visual are
// skipped. Returns (nil, nil) if every layer produced nil. The second return
// is the smallest redraw delay any layer requested (0 if any layer wants
// every-frame updates).
func (c *SpriteController) Composite(st, at float64) (Visual, float64, error) {
	parts := make([]Visual, 0, len(c.layers))
	w, h := 0, 0
	delay := -1.0
	for _, l := range c.layers {
		res, err := l.BuildVisual(st, at)
		if err != nil {
			return nil, 0, err
		}
		if delay < 0 || res.Delay < delay {
			delay = res.Delay
		}
		if res.Visual == nil {
			continue
		}
		b := res.Visual.Bounds()
		if b.Dx() > w {
			w = b.Dx()
		}
		if b.Dy() > h {
			h = b.Dy()
		}
		parts = append(parts, res.Visual)
	}
	if delay < 0 {
		delay = 0
	}
	if len(parts) == 0 {
		debugf("composite %q is empty, every layer returned nil", c.imageName)
		return nil, delay, nil
	}
	composite := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	for _, p := range parts {
		composite.DrawImage(p, op)
	}
	return composite, delay, nil
}

// Refresh re-composes the sprite at the given host clocks and re-registers
// the composite under the sprite's image name. Hosts call this after a
// selection changes or when a layer's redraw delay expires.
func (c *SpriteController) Refresh(st, at float64) error {
	composite, _, err := c.Composite(st, at)
	if err != nil {
		return err
	}
	if composite == nil {
		return nil
	}
	c.namespace.Register(c.imageName, composite)
	return nil
}
