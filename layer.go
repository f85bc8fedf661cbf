package paperdoll

// OptionDecl declares one option on a layer. Declaration order is preserved
// for UI grouping and argument resolution.
type OptionDecl struct {
	Key  string
	Spec *OptionSpec
}

// Layer is one visual contributor to a composite sprite. It owns a render
// callback, an optional post-transform, and an option schema; all mutable
// selection data is delegated to the bound [SelectionState].
type Layer struct {
	name      string
	callback  RenderCallback
	transform Transform
	options   map[string]*OptionSpec
	order     []string // declaration order of option keys
	state     *SelectionState
}

// NewLayer creates a layer template. The layer name must be non-empty and
// unique within a recipe, the callback must be non-nil, and every declared
// option needs a non-empty unique key and a valid spec. transform may be nil.
func NewLayer(name string, callback RenderCallback, transform Transform, decls ...OptionDecl) (*Layer, error) {
	if name == "" {
		return nil, constructErrorf("Layer", "layer name must be non-empty")
	}
	if callback == nil {
		return nil, constructErrorf("Layer", "layer %q needs a render callback", name)
	}
	options := make(map[string]*OptionSpec, len(decls))
	order := make([]string, 0, len(decls))
	for _, d := range decls {
		if d.Key == "" {
			return nil, constructErrorf("Layer", "layer %q declares an option with an empty key", name)
		}
		if d.Spec == nil {
			return nil, constructErrorf("Layer", "layer %q option %q has a nil spec", name, d.Key)
		}
		if _, dup := options[d.Key]; dup {
			return nil, constructErrorf("Layer", "layer %q declares option %q twice", name, d.Key)
		}
		options[d.Key] = d.Spec
		order = append(order, d.Key)
	}
	return &Layer{
		name:      name,
		callback:  callback,
		transform: transform,
		options:   options,
		order:     order,
	}, nil
}

// Name returns the layer's recipe-unique name.
func (l *Layer) Name() string { return l.name }

// OptionKeys returns the declared option keys in declaration order.
// The returned slice MUST NOT be mutated by the caller.
func (l *Layer) OptionKeys() []string { return l.order }

// Option returns the spec declared under key, or an [UnknownOptionError].
func (l *Layer) Option(key string) (*OptionSpec, error) {
	spec, ok := l.options[key]
	if !ok {
		return nil, &UnknownOptionError{Layer: l.name, Key: key}
	}
	return spec, nil
}

// BindState replaces the layer's bound SelectionState. All selection reads
// and writes go through the bound state; a layer template fresh from NewLayer
// or Clone has none.
func (l *Layer) BindState(state *SelectionState) error {
	if state == nil {
		return invalidStatef("BindState", "layer %q given a nil SelectionState", l.name)
	}
	l.state = state
	return nil
}

// State returns the bound SelectionState, or nil for an unbound template.
func (l *Layer) State() *SelectionState { return l.state }

// IncrementSelection advances the stored index for optionKey by one, wrapping
// from the option's size back to 1.
func (l *Layer) IncrementSelection(optionKey string) error {
	spec, err := l.Option(optionKey)
	if err != nil {
		return err
	}
	if l.state == nil {
		return invalidStatef("IncrementSelection", "layer %q has no bound SelectionState", l.name)
	}
	l.state.IncrementIndex(l.name, optionKey, spec.Size())
	return nil
}

// DecrementSelection moves the stored index for optionKey back by one,
// wrapping from 1 to the option's size.
func (l *Layer) DecrementSelection(optionKey string) error {
	spec, err := l.Option(optionKey)
	if err != nil {
		return err
	}
	if l.state == nil {
		return invalidStatef("DecrementSelection", "layer %q has no bound SelectionState", l.name)
	}
	l.state.DecrementIndex(l.name, optionKey, spec.Size())
	return nil
}

// ResolvedValue returns the concrete value at the option's current selection
// index: the list entry for a ValueList, a bool for a Boolean, the raw stored
// text for the text kinds, and the preview-image identifier for a Color.
func (l *Layer) ResolvedValue(optionKey string) (any, error) {
	spec, err := l.Option(optionKey)
	if err != nil {
		return nil, err
	}
	if l.state == nil {
		return nil, invalidStatef("ResolvedValue", "layer %q has no bound SelectionState", l.name)
	}
	idx := l.state.Selection(l.name, optionKey)
	switch spec.Kind() {
	case KindValueList:
		return spec.ValueAt(idx), nil
	case KindBoolean:
		return idx == 2, nil
	case KindText, KindValidatableText:
		return l.state.Text(l.name, optionKey), nil
	case KindColor:
		return spec.PreviewImage(idx), nil
	default:
		return nil, invalidStatef("ResolvedValue", "layer %q option %q has unknown kind %d", l.name, optionKey, spec.Kind())
	}
}

// OptionDisplayName returns the UI label of the option declared under key.
func (l *Layer) OptionDisplayName(optionKey string) (string, error) {
	spec, err := l.Option(optionKey)
	if err != nil {
		return "", err
	}
	return spec.DisplayName(), nil
}

// OptionCount returns the number of selectable values of the option declared
// under key.
func (l *Layer) OptionCount(optionKey string) (int, error) {
	spec, err := l.Option(optionKey)
	if err != nil {
		return 0, err
	}
	return spec.Size(), nil
}

// Clone produces a new Layer sharing the same callback, transform, and
// OptionSpec references but with no bound state. The factory uses clones to
// stamp independent sprite instances; option specs are immutable so sharing
// them is safe.
func (l *Layer) Clone() *Layer {
	return &Layer{
		name:      l.name,
		callback:  l.callback,
		transform: l.transform,
		options:   l.options,
		order:     l.order,
	}
}
