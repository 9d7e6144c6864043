// Package led implements the activity indicator (§6): toggled once per
// successfully enqueued message, and touched only by the host-link
// receiver (§5).
package led

// LED is a single GPIO output, owned exclusively by the receiver.
type LED interface {
	Toggle()
}
