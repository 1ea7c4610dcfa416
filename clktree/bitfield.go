package clktree

import (
	"fmt"
)

// Field identifies a contiguous bit-field within a 32-bit register word.
type Field struct {
	Shift uint8
	Width uint8
}

// Extract returns the Width-bit unsigned value at bit position Shift in
// word.
func (f Field) Extract(word uint32) uint32 {
	return (word >> f.Shift) & f.mask()
}

func (f Field) mask() uint32 {
	if f.Width >= 32 {
		return ^uint32(0)
	}
	return (uint32(1) << f.Width) - 1
}

// validate catches malformed fields at tree-construction time so that
// Extract never has to.
func (f Field) validate() error {
	if f.Width == 0 {
		return fmt.Errorf("field has zero width")
	}
	if int(f.Shift)+int(f.Width) > 32 {
		return fmt.Errorf("field shift %d width %d overruns 32-bit register", f.Shift, f.Width)
	}
	return nil
}

// Extract returns the width-bit unsigned value at bit position shift in
// word. It's shorthand for Field{shift, width}.Extract(word).
func Extract(word uint32, shift, width uint8) uint32 {
	return Field{shift, width}.Extract(word)
}
