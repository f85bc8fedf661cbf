package paperdoll

import (
	"errors"
	"testing"
)

func TestNewValueList(t *testing.T) {
	spec, err := NewValueList("Hair", "afro", "bob", "buns")
	if err != nil {
		t.Fatalf("NewValueList: %v", err)
	}
	if spec.Kind() != KindValueList {
		t.Errorf("Kind = %v, want ValueList", spec.Kind())
	}
	if spec.DisplayName() != "Hair" {
		t.Errorf("DisplayName = %q, want %q", spec.DisplayName(), "Hair")
	}
	if spec.Size() != 3 {
		t.Errorf("Size = %d, want 3", spec.Size())
	}
	if got := spec.ValueAt(2); got != "bob" {
		t.Errorf("ValueAt(2) = %v, want bob", got)
	}
}

func TestNewValueListEmpty(t *testing.T) {
	_, err := NewValueList("Hair")
	assertConstructionError(t, err)
}

func TestValueAtOutOfRange(t *testing.T) {
	spec, _ := NewValueList("Hair", "afro")
	if got := spec.ValueAt(0); got != nil {
		t.Errorf("ValueAt(0) = %v, want nil", got)
	}
	if got := spec.ValueAt(2); got != nil {
		t.Errorf("ValueAt(2) = %v, want nil", got)
	}
}

func TestNewBoolean(t *testing.T) {
	spec, err := NewBoolean("Glasses")
	if err != nil {
		t.Fatalf("NewBoolean: %v", err)
	}
	if spec.Kind() != KindBoolean {
		t.Errorf("Kind = %v, want Boolean", spec.Kind())
	}
	if spec.Size() != 2 {
		t.Errorf("Size = %d, want 2", spec.Size())
	}
}

func TestNewText(t *testing.T) {
	spec, err := NewText("Name", "Sir ", " III", 12)
	if err != nil {
		t.Fatalf("NewText: %v", err)
	}
	if spec.Size() != 1 {
		t.Errorf("Size = %d, want 1", spec.Size())
	}
	if spec.Prefix() != "Sir " || spec.Suffix() != " III" || spec.MaxLen() != 12 {
		t.Errorf("framing = (%q, %q, %d), want (Sir , III, 12)",
			spec.Prefix(), spec.Suffix(), spec.MaxLen())
	}
}

func TestNewTextNegativeMaxLen(t *testing.T) {
	_, err := NewText("Name", "", "", -1)
	assertConstructionError(t, err)
}

func TestNewValidatableTextNeedsValidator(t *testing.T) {
	_, err := NewValidatableText("Name", "", "", 0, nil)
	assertConstructionError(t, err)
}

func TestNewColor(t *testing.T) {
	spec, err := NewColor("Skin", 4, func(i int) string { return "swatch" })
	if err != nil {
		t.Fatalf("NewColor: %v", err)
	}
	if spec.Size() != 4 {
		t.Errorf("Size = %d, want 4", spec.Size())
	}
	if got := spec.PreviewImage(1); got != "swatch" {
		t.Errorf("PreviewImage(1) = %q, want swatch", got)
	}
}

func TestNewColorInvalid(t *testing.T) {
	if _, err := NewColor("Skin", 0, func(i int) string { return "" }); err == nil {
		t.Error("zero swatches should fail")
	}
	if _, err := NewColor("Skin", 2, nil); err == nil {
		t.Error("nil preview should fail")
	}
}

func TestOptionKindString(t *testing.T) {
	cases := []struct {
		kind OptionKind
		want string
	}{
		{KindValueList, "ValueList"},
		{KindBoolean, "Boolean"},
		{KindText, "Text"},
		{KindValidatableText, "ValidatableText"},
		{KindColor, "Color"},
		{OptionKind(99), "Unknown"},
	}
	for _, c := range cases {
		if got := c.kind.String(); got != c.want {
			t.Errorf("OptionKind(%d).String() = %q, want %q", c.kind, got, c.want)
		}
	}
}

func assertConstructionError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected ConstructionError, got nil")
	}
	var ce *ConstructionError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConstructionError, got %T: %v", err, err)
	}
}
