// Package paperdoll composes a single sprite out of an ordered stack of
// independently-configurable layers — the classic "dress-up doll" model used
// by character creators.
//
// Each [Layer] declares a small schema of typed, user-selectable options
// (palette swap, clothing choice, hairstyle, a free-text name field) and owns
// a render callback that turns the current selections into a [Visual]. A
// [SpriteFactory] validates an ordered recipe of layer templates once and
// stamps out any number of independent sprite instances, each with its own
// cloned layers and a fresh [SelectionState]. The [SpriteController] facade is
// what a menu or settings screen talks to: increment, decrement, toggle, set
// text, randomize.
//
// # Rendering contract
//
// Paperdoll decides which values reach a layer's render callback and when the
// callback must run again; it never rasterizes anything itself beyond
// compositing the visuals the callbacks return. The host's redraw loop drives
// everything: it calls [Layer.BuildVisual] (or [SpriteController.Composite])
// with its show-time and animation-time clocks, and the returned
// [RenderResult] carries an advisory delay in seconds until the next
// invocation, where 0 means "every frame". There is no internal timer or
// thread; the whole package is single-threaded and host-polled.
//
// # Quick start
//
//	hair, _ := paperdoll.NewValueList("Hair", "afro", "bob", "buns")
//	layer, _ := paperdoll.NewLayer("hair", drawHair, nil,
//		paperdoll.OptionDecl{Key: "hair_style", Spec: hair},
//	)
//	factory, _ := paperdoll.NewSpriteFactory(nil, layer)
//	doll, _ := factory.NewSprite("player_doll")
//	doll.Increment("hair", "hair_style")
//
// # Option kinds
//
// Options are a closed set of kinds: [KindValueList], [KindBoolean],
// [KindText], [KindValidatableText], and [KindColor]. Selection indices are
// 1-based and always wrap within [1, size]; see [OptionSpec].
package paperdoll
