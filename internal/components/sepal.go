package components

// Sepals are the outermost whorl and share their geometry with petals:
// both are modified leaves. The presets here are green, narrower than
// petals, and curl downward for a protective posture.

// DefaultSepalParams returns a typical sepal with a slight downward
// curl.
func DefaultSepalParams() PetalParams {
	return PetalParams{
		Length:       3.0,
		Width:        1.0,
		TipSharpness: 0.5,
		BaseWidth:    0.4,
		Curl:         -0.2,
		Resolution:   16,
		Color:        sepalGreen,
	}
}

// NarrowSepalParams returns a thin, tightly curled protective sepal.
func NarrowSepalParams() PetalParams {
	return PetalParams{
		Length:       3.5,
		Width:        0.7,
		TipSharpness: 0.7,
		BaseWidth:    0.3,
		Curl:         -0.3,
		Resolution:   14,
		Color:        sepalGreen,
	}
}

// WideSepalParams returns a broad, leafy sepal.
func WideSepalParams() PetalParams {
	return PetalParams{
		Length:       2.5,
		Width:        1.5,
		TipSharpness: 0.3,
		BaseWidth:    0.6,
		Curl:         -0.1,
		Resolution:   18,
		Color:        sepalGreen,
	}
}

// RecurvedSepalParams returns a sepal that curls strongly backward,
// with a slight twist.
func RecurvedSepalParams() PetalParams {
	return PetalParams{
		Length:       3.0,
		Width:        1.2,
		TipSharpness: 0.4,
		BaseWidth:    0.5,
		Curl:         -0.6,
		Twist:        5.0,
		Resolution:   16,
		Color:        sepalGreen,
	}
}
