package paperdoll

import "fmt"

// ConstructionError reports invalid input to an option, layer, or factory
// constructor. Construction either succeeds completely or fails with this
// error and no partial state.
type ConstructionError struct {
	Component string // "OptionSpec", "Layer", "SpriteFactory", ...
	Reason    string
	Err       error // underlying cause, if any (e.g. a validator compile error)
}

func (e *ConstructionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("paperdoll: construct %s: %s: %v", e.Component, e.Reason, e.Err)
	}
	return fmt.Sprintf("paperdoll: construct %s: %s", e.Component, e.Reason)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

func constructErrorf(component, format string, args ...any) error {
	return &ConstructionError{Component: component, Reason: fmt.Sprintf(format, args...)}
}

// UnknownOptionError reports a reference to an option key (or layer name)
// that was never declared on the target.
type UnknownOptionError struct {
	Layer string
	Key   string
}

func (e *UnknownOptionError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("paperdoll: layer %q not found", e.Layer)
	}
	return fmt.Sprintf("paperdoll: layer %q has no option %q", e.Layer, e.Key)
}

// InvalidStateError reports an operation performed against missing or
// incompatible selection state: no SelectionState bound, a selection index
// written outside [1, size], or an operation applied to the wrong option kind
// (Toggle on a non-Boolean, SetText on a non-Text).
type InvalidStateError struct {
	Op     string
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("paperdoll: %s: %s", e.Op, e.Reason)
}

func invalidStatef(op, format string, args ...any) error {
	return &InvalidStateError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
