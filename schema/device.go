// Package schema loads RIDL device descriptions: a device, its datasheet
// provenance, and the ordered registers and bit fields it exposes.
//
// Documents may be written in YAML, JSON or TOML. All three share the same
// keys; see Parse for the accepted shapes of numeric and bit range values.
package schema

// Datasheet identifies the document a device description was transcribed from.
type Datasheet struct {
	Link     string
	Title    string
	Revision string
}

// Device is a fully loaded device description. It is not modified after
// Parse returns.
type Device struct {
	Name        string
	Description string
	Datasheet   Datasheet
	Registers   []Register
}

// Register is one addressable storage location of a device.
type Register struct {
	Name        string
	Description string
	Offset      uint64
	// Size is the register width in bits.
	Size   int
	Fields []Field

	line int
}

// Field is a contiguous run of bits inside a register.
type Field struct {
	Name        string
	Description string
	Bits        BitRange

	line int
}

// BitRange is an inclusive span of bit indices. Start is the most
// significant bit, Stop the least significant one.
type BitRange struct {
	Start int
	Stop  int
}

// Width returns the number of bits covered by the range.
func (b BitRange) Width() int {
	return b.Start - b.Stop + 1
}

// Mask returns 2^Width-1, the unshifted mask of the range.
func (b BitRange) Mask() uint64 {
	w := b.Width()
	if w >= 64 {
		return ^uint64(0)
	}
	if w <= 0 {
		return 0
	}
	return 1<<uint(w) - 1
}

// Overlaps reports whether b and o share at least one bit.
func (b BitRange) Overlaps(o BitRange) bool {
	return b.Stop <= o.Start && o.Stop <= b.Start
}

// FullWidth reports whether the register consists of a single field that
// spans all of its bits.
func (r *Register) FullWidth() bool {
	return len(r.Fields) == 1 && r.Fields[0].Bits.Width() == r.Size
}
