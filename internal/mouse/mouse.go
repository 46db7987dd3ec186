// Package mouse provides pointer injection for the virtual mouse.
package mouse

// Sink is the narrow capability interface the control engine drives.
// Implementations inject pointer events into the host operating system.
type Sink interface {
	// Move positions the cursor at absolute screen coordinates.
	Move(x, y float64)

	// Click performs a left click.
	Click()

	// RightClick performs a right click.
	RightClick()

	// SetDrag presses (true) or releases (false) the left button.
	SetDrag(active bool)

	// Scroll scrolls the wheel by the signed amount.
	Scroll(amount int)

	// ScreenSize returns the screen dimensions in pixels.
	ScreenSize() (width, height int)
}
