package input

import "sync"

// KeyBuffer queues grid-mode keystrokes for the grid editor. It implements
// CharSource.
type KeyBuffer struct {
	ch chan byte
}

// NewKeyBuffer creates a buffer holding up to size pending keys.
func NewKeyBuffer(size int) *KeyBuffer {
	return &KeyBuffer{ch: make(chan byte, size)}
}

// Push queues c, dropping it when the buffer is full.
func (k *KeyBuffer) Push(c byte) bool {
	select {
	case k.ch <- c:
		return true
	default:
		return false
	}
}

// ReadChar returns the next key or 0 when none is pending.
func (k *KeyBuffer) ReadChar() byte {
	select {
	case c := <-k.ch:
		return c
	default:
		return 0
	}
}

// stickLevels are Y readings inside each interval band, slowest last.
var stickLevels = [...]uint16{0, 140, 300, StickMax}

// VirtualStick is a joystick driven from the keyboard. Up and Down step
// through the interval bands, Left and Right push the stick to the stop and
// start positions, and a press is reported for exactly one reading.
type VirtualStick struct {
	mu      sync.Mutex
	level   int
	x       uint16
	pressed bool
}

// NewVirtualStick returns a stick at rest in the 1s band.
func NewVirtualStick() *VirtualStick {
	return &VirtualStick{x: StickMax / 2}
}

// Up moves the stick into the next slower interval band.
func (v *VirtualStick) Up() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.level < len(stickLevels)-1 {
		v.level++
	}
}

// Down moves the stick into the next faster interval band.
func (v *VirtualStick) Down() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.level > 0 {
		v.level--
	}
}

// Left pushes the stick to the stop position.
func (v *VirtualStick) Left() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.x = 0
}

// Right pushes the stick to the start position.
func (v *VirtualStick) Right() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.x = StickMax
}

// Press latches a button press for the next reading.
func (v *VirtualStick) Press() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pressed = true
}

// ReadStick implements StickSource.
func (v *VirtualStick) ReadStick() Stick {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := Stick{X: v.x, Y: stickLevels[v.level], Pressed: v.pressed}
	v.pressed = false
	return s
}
