package paperdoll

// RenderArgs is the fixed-shape argument record passed to a layer's render
// callback. Values holds the resolved value of every option the layer
// declares; UserState holds the caller-supplied overrides from
// [SelectionState.SetUserValue]; ST and AT are the host's show-time and
// animation-time clocks in seconds, both monotonically non-decreasing.
type RenderArgs struct {
	Values    map[string]any
	UserState map[string]any
	ST        float64
	AT        float64
}

// Lookup returns the argument stored under key, consulting Values before
// UserState. Declared option values therefore always win over a user override
// of the same name — this precedence is part of the contract, not an
// accident.
func (a RenderArgs) Lookup(key string) (any, bool) {
	if v, ok := a.Values[key]; ok {
		return v, true
	}
	v, ok := a.UserState[key]
	return v, ok
}

// RenderResult is what a render callback returns: the produced visual plus an
// advisory delay in seconds until the host should resolve and invoke the
// callback again. A delay of 0 means "re-evaluate every frame". The delay is
// scheduling information for the host's redraw loop, nothing in paperdoll
// acts on it.
type RenderResult struct {
	Visual Visual
	Delay  float64
}

// RenderCallback produces one layer's visual from the resolved arguments.
// Callbacks must be pure with respect to selection state: they may be invoked
// at arbitrary times by the host's redraw loop.
type RenderCallback func(RenderArgs) RenderResult

// Resolve builds the render arguments for the layer's current selections:
// every declared option key resolved to its concrete value, the state's user
// overrides, and the host clocks. Resolving never mutates state. Fails with
// [InvalidStateError] if no state is bound.
func (l *Layer) Resolve(st, at float64) (RenderArgs, error) {
	if l.state == nil {
		return RenderArgs{}, invalidStatef("Resolve", "layer %q has no bound SelectionState", l.name)
	}
	values := make(map[string]any, len(l.order))
	for _, key := range l.order {
		v, err := l.ResolvedValue(key)
		if err != nil {
			return RenderArgs{}, err
		}
		values[key] = v
	}
	return RenderArgs{
		Values:    values,
		UserState: l.state.UserValues(),
		ST:        st,
		AT:        at,
	}, nil
}

// BuildVisual resolves the layer's current selections, invokes the render
// callback, and applies the layer's transform (if any) to the resulting
// visual. The returned delay is the callback's redraw request, passed through
// untouched.
func (l *Layer) BuildVisual(st, at float64) (RenderResult, error) {
	args, err := l.Resolve(st, at)
	if err != nil {
		return RenderResult{}, err
	}
	res := l.callback(args)
	if l.transform != nil {
		res.Visual = l.transform(res.Visual)
	}
	return res, nil
}
