package epd

// Device is the display sink consumed by the serving loop. Implementations
// have two observable power states, asleep and active: Wake moves the panel
// to active and is required before any Paint or Clear; Sleep moves it back
// and must follow every update to limit panel wear and power draw.
type Device interface {
	// Wake initializes the panel controller. Idempotent while active.
	Wake() error
	// Clear refreshes the whole panel to white.
	Clear() error
	// Paint pushes one frame. Each plane is one bit per pixel, MSB first,
	// rows padded to whole bytes, bit set = white.
	Paint(black, red []byte) error
	// Sleep puts the controller into deep sleep.
	Sleep() error
	// Width is the native panel width in pixels.
	Width() int
	// Height is the native panel height in pixels.
	Height() int
}
