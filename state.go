package paperdoll

// stateKey addresses one option instance: selections are scoped per layer so
// two layers may declare the same option key without colliding.
type stateKey struct {
	layer  string
	option string
}

// SelectionState is the per-sprite mutable store of all selection indices,
// text values, validity flags, and caller-supplied user overrides. One
// instance is created for each stamped sprite and bound to every cloned
// layer, so the layers of one sprite share selections while separate sprites
// never do.
//
// SelectionState is not safe for concurrent use; the host UI is expected to
// serialize mutations (paperdoll is single-threaded throughout).
type SelectionState struct {
	selections map[stateKey]int
	texts      map[stateKey]string
	invalid    map[stateKey]bool
	user       map[string]any
}

// NewSelectionState creates an empty state. Every option defaults to
// selection index 1, text "", and valid = true on first access.
func NewSelectionState() *SelectionState {
	return &SelectionState{
		selections: make(map[stateKey]int),
		texts:      make(map[stateKey]string),
		invalid:    make(map[stateKey]bool),
		user:       make(map[string]any),
	}
}

// Selection returns the current 1-based index for (layer, optionKey),
// defaulting to 1 if never set.
func (s *SelectionState) Selection(layer, optionKey string) int {
	if idx, ok := s.selections[stateKey{layer, optionKey}]; ok {
		return idx
	}
	return 1
}

// SetSelection stores index for (layer, optionKey). The caller must supply an
// index already in [1, size]; out-of-range values fail with
// [InvalidStateError] and leave the stored index untouched. Increment and
// decrement are the wrap-around paths; direct SetSelection is the stricter
// API used by randomize and UI-driven set.
func (s *SelectionState) SetSelection(layer, optionKey string, index, size int) error {
	if index < 1 || index > size {
		return invalidStatef("SetSelection",
			"index %d out of range [1, %d] for %s/%s", index, size, layer, optionKey)
	}
	s.selections[stateKey{layer, optionKey}] = index
	return nil
}

// IncrementIndex advances the stored index by one, wrapping from size back to
// 1, and returns the new index. Well-defined for any size >= 1.
func (s *SelectionState) IncrementIndex(layer, optionKey string, size int) int {
	k := stateKey{layer, optionKey}
	idx := s.Selection(layer, optionKey) + 1
	if idx > size {
		idx = 1
	}
	s.selections[k] = idx
	return idx
}

// DecrementIndex moves the stored index back by one, wrapping from 1 to size,
// and returns the new index.
func (s *SelectionState) DecrementIndex(layer, optionKey string, size int) int {
	k := stateKey{layer, optionKey}
	idx := s.Selection(layer, optionKey) - 1
	if idx < 1 {
		idx = size
	}
	s.selections[k] = idx
	return idx
}

// Text returns the stored text for (layer, optionKey), defaulting to "".
func (s *SelectionState) Text(layer, optionKey string) string {
	return s.texts[stateKey{layer, optionKey}]
}

// SetText stores text for (layer, optionKey). Validation is the caller's
// concern (see [SpriteController.SetText]); the state stores whatever it is
// given so the user can see and correct an invalid value.
func (s *SelectionState) SetText(layer, optionKey, text string) {
	s.texts[stateKey{layer, optionKey}] = text
}

// Valid returns the validity flag for (layer, optionKey), defaulting to true.
func (s *SelectionState) Valid(layer, optionKey string) bool {
	return !s.invalid[stateKey{layer, optionKey}]
}

// SetValid records the result of running a text option's validator.
func (s *SelectionState) SetValid(layer, optionKey string, valid bool) {
	k := stateKey{layer, optionKey}
	if valid {
		delete(s.invalid, k)
	} else {
		s.invalid[k] = true
	}
}

// SetUserValue stores an arbitrary caller-supplied value that is merged into
// every layer's render arguments. User values never affect option indices,
// and a user value under a declared option key is shadowed by the option's
// resolved value — declared options always win (see [RenderArgs.Lookup]).
func (s *SelectionState) SetUserValue(key string, value any) {
	s.user[key] = value
}

// UserValues returns the user override map. The returned map is the live
// store and MUST NOT be mutated by the caller; use SetUserValue.
func (s *SelectionState) UserValues() map[string]any {
	return s.user
}
