package paperdoll

import (
	"errors"
	"testing"
)

func TestResolveContainsEveryDeclaredOption(t *testing.T) {
	boolean, _ := NewBoolean("Glasses")
	l := mustLayer(t, "face",
		OptionDecl{Key: "eyes", Spec: mustValueList(t, "Eyes", "round", "narrow")},
		OptionDecl{Key: "glasses", Spec: boolean},
	)
	if err := l.BindState(NewSelectionState()); err != nil {
		t.Fatal(err)
	}
	args, err := l.Resolve(1.5, 0.25)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(args.Values) != 2 {
		t.Errorf("Values has %d entries, want 2", len(args.Values))
	}
	if args.Values["eyes"] != "round" {
		t.Errorf("eyes = %v, want round", args.Values["eyes"])
	}
	if args.Values["glasses"] != false {
		t.Errorf("glasses = %v, want false", args.Values["glasses"])
	}
	if args.ST != 1.5 || args.AT != 0.25 {
		t.Errorf("clocks = (%v, %v), want (1.5, 0.25)", args.ST, args.AT)
	}
}

func TestResolveRequiresBoundState(t *testing.T) {
	l := hairLayer(t)
	_, err := l.Resolve(0, 0)
	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("Resolve unbound = %v, want InvalidStateError", err)
	}
}

func TestResolveDoesNotMutateState(t *testing.T) {
	l := hairLayer(t)
	state := NewSelectionState()
	if err := l.BindState(state); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		if _, err := l.Resolve(float64(i), float64(i)); err != nil {
			t.Fatal(err)
		}
	}
	if got := state.Selection("hair", "hair_style"); got != 1 {
		t.Errorf("selection after repeated resolves = %d, want 1", got)
	}
}

func TestDeclaredOptionsWinOverUserState(t *testing.T) {
	l := hairLayer(t)
	state := NewSelectionState()
	if err := l.BindState(state); err != nil {
		t.Fatal(err)
	}
	state.SetUserValue("hair_style", "override")
	state.SetUserValue("mood", "happy")

	args, err := l.Resolve(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := args.Lookup("hair_style"); got != "afro" {
		t.Errorf("Lookup(hair_style) = %v, want afro (declared option wins)", got)
	}
	if got, _ := args.Lookup("mood"); got != "happy" {
		t.Errorf("Lookup(mood) = %v, want happy", got)
	}
	if _, ok := args.Lookup("absent"); ok {
		t.Error("Lookup(absent) should report not found")
	}
}

func TestBuildVisualAppliesTransformAndDelay(t *testing.T) {
	frame := SolidVisual(4, 4, ColorWhite)
	var transformed bool
	transform := func(v Visual) Visual {
		transformed = true
		return v
	}
	cb := func(args RenderArgs) RenderResult {
		return RenderResult{Visual: frame, Delay: 0.5}
	}
	l, err := NewLayer("base", cb, transform)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.BindState(NewSelectionState()); err != nil {
		t.Fatal(err)
	}
	res, err := l.BuildVisual(0, 0)
	if err != nil {
		t.Fatalf("BuildVisual: %v", err)
	}
	if !transformed {
		t.Error("transform was not applied")
	}
	if res.Visual != frame {
		t.Error("visual should pass through the identity transform")
	}
	if res.Delay != 0.5 {
		t.Errorf("Delay = %v, want 0.5", res.Delay)
	}
}

func TestBuildVisualBareVisualDefaultsDelayZero(t *testing.T) {
	cb := func(args RenderArgs) RenderResult {
		return RenderResult{Visual: nil} // no delay set: every frame
	}
	l, err := NewLayer("base", cb, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.BindState(NewSelectionState()); err != nil {
		t.Fatal(err)
	}
	res, err := l.BuildVisual(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Delay != 0 {
		t.Errorf("Delay = %v, want 0", res.Delay)
	}
}

func TestCallbackSeesClocksAndUserState(t *testing.T) {
	var seen RenderArgs
	cb := func(args RenderArgs) RenderResult {
		seen = args
		return RenderResult{}
	}
	l, err := NewLayer("base", cb, nil)
	if err != nil {
		t.Fatal(err)
	}
	state := NewSelectionState()
	state.SetUserValue("outfit", "spring")
	if err := l.BindState(state); err != nil {
		t.Fatal(err)
	}
	if _, err := l.BuildVisual(3, 7); err != nil {
		t.Fatal(err)
	}
	if seen.ST != 3 || seen.AT != 7 {
		t.Errorf("callback clocks = (%v, %v), want (3, 7)", seen.ST, seen.AT)
	}
	if seen.UserState["outfit"] != "spring" {
		t.Errorf("callback UserState = %v, want outfit/spring", seen.UserState)
	}
}
