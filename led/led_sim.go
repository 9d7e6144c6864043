//go:build !tinygo && !periph

package led

// SimLED counts toggles instead of driving real hardware; the
// software-simulation board backend (§10) uses it.
type SimLED struct {
	On     bool
	Toggles int
}

func (l *SimLED) Toggle() {
	l.On = !l.On
	l.Toggles++
}
