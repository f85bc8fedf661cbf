package paperdoll

import "github.com/hajimehoshi/ebiten/v2"

// Tint returns a Transform that multiplies a visual by c. The source visual
// is left untouched; the tinted copy is drawn into a fresh image. Colors are
// premultiplied at submission, matching every other draw in the package.
func Tint(c Color) Transform {
	return func(v Visual) Visual {
		if v == nil {
			return nil
		}
		b := v.Bounds()
		out := ebiten.NewImage(b.Dx(), b.Dy())
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.Scale(
			float32(c.R*c.A),
			float32(c.G*c.A),
			float32(c.B*c.A),
			float32(c.A),
		)
		out.DrawImage(v, op)
		return out
	}
}

// FadeAlpha returns a Transform that scales a visual's opacity by alpha,
// clamped to [0, 1].
func FadeAlpha(alpha float64) Transform {
	return Tint(Color{R: 1, G: 1, B: 1, A: clamp01(alpha)})
}

// ComposeTransforms chains transforms left to right: the first runs on the
// callback's output, the last produces the final visual. Nil entries are
// skipped; composing nothing returns the identity.
func ComposeTransforms(transforms ...Transform) Transform {
	return func(v Visual) Visual {
		for _, t := range transforms {
			if t != nil {
				v = t(v)
			}
		}
		return v
	}
}

// SolidVisual creates a w x h visual filled with c. Handy for base layers and
// tests that don't want to load assets.
func SolidVisual(w, h int, c Color) Visual {
	img := ebiten.NewImage(w, h)
	img.Fill(c.toRGBA())
	return img
}
