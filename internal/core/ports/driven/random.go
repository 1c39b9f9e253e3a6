package driven

// RandomSource supplies the randomness used by fallback window selection.
// Production wiring seeds it from the wall clock; tests inject a fixed
// seed so fallback selection is assertable.
type RandomSource interface {
	// Intn returns a uniform value in [0, n). Panics if n <= 0, matching
	// math/rand semantics.
	Intn(n int) int
}
