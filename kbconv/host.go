package kbconv

// Host is the slice of host-side services the lifecycle and decoder consume:
// the current LED state to push down to an AT keyboard, and a way to flush
// stuck keys from the host's own key-state tracking when the matrix is
// force-cleared.
type Host interface {
	KeyboardLEDs() byte
	ClearKeyboard()
}
