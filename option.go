package paperdoll

// Validator checks a text option's current value. It must be a pure
// predicate: validators run on every SetText and must not retain the string.
type Validator func(text string) bool

// PreviewFunc maps a color option's 1-based selection index to the identifier
// of a preview image in the host's asset namespace.
type PreviewFunc func(index int) string

// OptionSpec is the immutable description of one selectable property on a
// layer: its kind, display label, and domain of values. Specs are shared by
// reference between cloned layers, so all per-instance data (the current
// index, text value, validity flag) lives in [SelectionState] instead.
type OptionSpec struct {
	displayName string
	kind        OptionKind

	values []any // KindValueList

	prefix    string // text kinds
	suffix    string
	maxLen    int
	validator Validator // KindValidatableText

	swatches int // KindColor
	preview  PreviewFunc
}

// NewValueList creates a ValueList option over the given values, in order.
// At least one value is required.
func NewValueList(displayName string, values ...any) (*OptionSpec, error) {
	if len(values) == 0 {
		return nil, constructErrorf("OptionSpec", "value list %q needs at least one value", displayName)
	}
	return &OptionSpec{
		displayName: displayName,
		kind:        KindValueList,
		values:      append([]any(nil), values...),
	}, nil
}

// NewBoolean creates a two-valued option. Index 1 resolves to false,
// index 2 to true.
func NewBoolean(displayName string) (*OptionSpec, error) {
	return &OptionSpec{displayName: displayName, kind: KindBoolean}, nil
}

// NewText creates a free-text option. Prefix and suffix are display framing
// for the UI; maxLen limits the stored text length in runes (0 = unlimited).
func NewText(displayName, prefix, suffix string, maxLen int) (*OptionSpec, error) {
	if maxLen < 0 {
		return nil, constructErrorf("OptionSpec", "text option %q has negative maxLen %d", displayName, maxLen)
	}
	return &OptionSpec{
		displayName: displayName,
		kind:        KindText,
		prefix:      prefix,
		suffix:      suffix,
		maxLen:      maxLen,
	}, nil
}

// NewValidatableText creates a free-text option whose value is checked by
// validate on every SetText. A failing validator never rejects the text; it
// only flips the per-instance valid flag so the UI can highlight the field.
func NewValidatableText(displayName, prefix, suffix string, maxLen int, validate Validator) (*OptionSpec, error) {
	if validate == nil {
		return nil, constructErrorf("OptionSpec", "validatable text option %q needs a validator", displayName)
	}
	if maxLen < 0 {
		return nil, constructErrorf("OptionSpec", "text option %q has negative maxLen %d", displayName, maxLen)
	}
	return &OptionSpec{
		displayName: displayName,
		kind:        KindValidatableText,
		prefix:      prefix,
		suffix:      suffix,
		maxLen:      maxLen,
		validator:   validate,
	}, nil
}

// NewColor creates a palette option with the given number of swatches.
// preview maps a 1-based swatch index to a preview-image identifier.
func NewColor(displayName string, swatches int, preview PreviewFunc) (*OptionSpec, error) {
	if swatches < 1 {
		return nil, constructErrorf("OptionSpec", "color option %q needs at least one swatch, got %d", displayName, swatches)
	}
	if preview == nil {
		return nil, constructErrorf("OptionSpec", "color option %q needs a preview function", displayName)
	}
	return &OptionSpec{
		displayName: displayName,
		kind:        KindColor,
		swatches:    swatches,
		preview:     preview,
	}, nil
}

// DisplayName returns the option's UI label. Options with the same display
// name are grouped together by [SpriteController.OptionsByGroup].
func (o *OptionSpec) DisplayName() string { return o.displayName }

// Kind returns the option's variant.
func (o *OptionSpec) Kind() OptionKind { return o.kind }

// Size returns the number of discrete selection indices: the list length for
// a ValueList, 2 for a Boolean, the swatch count for a Color, and 1 for the
// text kinds. Always at least 1; the valid index domain is [1, Size].
func (o *OptionSpec) Size() int {
	switch o.kind {
	case KindValueList:
		return len(o.values)
	case KindBoolean:
		return 2
	case KindColor:
		return o.swatches
	case KindText, KindValidatableText:
		return 1
	default:
		return 1
	}
}

// ValueAt returns the ValueList entry at the 1-based index.
// Only meaningful for KindValueList; other kinds return nil.
func (o *OptionSpec) ValueAt(index int) any {
	if o.kind != KindValueList || index < 1 || index > len(o.values) {
		return nil
	}
	return o.values[index-1]
}

// PreviewImage returns the preview-image identifier for the 1-based swatch
// index. Only meaningful for KindColor; other kinds return "".
func (o *OptionSpec) PreviewImage(index int) string {
	if o.kind != KindColor || o.preview == nil {
		return ""
	}
	return o.preview(index)
}

// Prefix returns the display prefix of a text option.
func (o *OptionSpec) Prefix() string { return o.prefix }

// Suffix returns the display suffix of a text option.
func (o *OptionSpec) Suffix() string { return o.suffix }

// MaxLen returns the rune limit of a text option (0 = unlimited).
func (o *OptionSpec) MaxLen() int { return o.maxLen }

// isText reports whether the option stores free text.
func (o *OptionSpec) isText() bool {
	return o.kind == KindText || o.kind == KindValidatableText
}
