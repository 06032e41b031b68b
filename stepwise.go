package maze

// Stepwise is implemented by components that can be advanced one discrete
// step at a time. Advance reports whether further steps remain.
type Stepwise interface {
	Advance() bool
}

// Drive advances s until it reports no further steps and returns the number
// of calls made.
func Drive(s Stepwise) int {
	n := 1
	for s.Advance() {
		n++
	}
	return n
}
