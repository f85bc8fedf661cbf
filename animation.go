package paperdoll

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FrameCycle builds a render callback that cycles through frames at the given
// frames-per-second, using the animation-time clock to select the frame. The
// returned result asks the host to redraw after one frame interval, so the
// layer animates without every-frame re-resolution. Fails with
// [ConstructionError] on an empty frame list or non-positive fps.
func FrameCycle(fps float64, frames ...Visual) (RenderCallback, error) {
	if len(frames) == 0 {
		return nil, constructErrorf("FrameCycle", "needs at least one frame")
	}
	if fps <= 0 {
		return nil, constructErrorf("FrameCycle", "fps must be positive, got %v", fps)
	}
	interval := 1 / fps
	return func(args RenderArgs) RenderResult {
		idx := int(args.AT*fps) % len(frames)
		if idx < 0 {
			idx = 0
		}
		return RenderResult{Visual: frames[idx], Delay: interval}
	}, nil
}

// EaseFade wraps a render callback so its visual fades in from fully
// transparent over duration seconds of animation time, eased by fn. While the
// fade runs the wrapper requests every-frame redraws; once finished it passes
// the inner callback's delay through unchanged.
//
// The fade is driven by the at clock via [gween.Tween.Set], so the wrapper
// stays a pure function of (time, selections) like any other callback.
func EaseFade(cb RenderCallback, duration float32, fn ease.TweenFunc) RenderCallback {
	tween := gween.New(0, 1, duration, fn)
	return func(args RenderArgs) RenderResult {
		alpha, finished := tween.Set(float32(args.AT))
		res := cb(args)
		if res.Visual != nil {
			res.Visual = FadeAlpha(float64(alpha))(res.Visual)
		}
		if !finished {
			res.Delay = 0
		}
		return res
	}
}

// Pulse wraps a render callback so its visual's opacity oscillates between
// minAlpha and 1 with the given period in seconds, eased by fn on each half
// cycle. Requests every-frame redraws.
func Pulse(cb RenderCallback, period float64, minAlpha float64, fn ease.TweenFunc) RenderCallback {
	if period <= 0 {
		period = 1
	}
	half := float32(period / 2)
	out := gween.New(1, float32(clamp01(minAlpha)), half, fn)
	back := gween.New(float32(clamp01(minAlpha)), 1, half, fn)
	return func(args RenderArgs) RenderResult {
		phase := float32(math.Mod(args.AT, period))
		var alpha float32
		if phase < half {
			alpha, _ = out.Set(phase)
		} else {
			alpha, _ = back.Set(phase - half)
		}
		res := cb(args)
		if res.Visual != nil {
			res.Visual = FadeAlpha(float64(alpha))(res.Visual)
		}
		res.Delay = 0
		return res
	}
}
