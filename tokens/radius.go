package tokens

// RadiusScale is the corner-radius ramp derived from a single base radius.
type RadiusScale struct {
	None float64
	Sm   float64
	Md   float64
	Lg   float64
	Xl   float64
	Full float64
}

// fullRadius is large enough to render any control as a pill.
const fullRadius = 9999

// ScaleFromBase builds the ramp around base, which becomes the medium step.
// Steps are plain offsets from base; a base below 4 gives a negative Sm, which
// Fyne draws as a square corner.
func ScaleFromBase(base float64) RadiusScale {
	return RadiusScale{
		None: 0,
		Sm:   base - 4,
		Md:   base,
		Lg:   base + 2,
		Xl:   base + 6,
		Full: fullRadius,
	}
}
