package schema

import (
	"fmt"
	"strings"
)

// maxMaskWidth is the widest field whose mask fits a uint64.
const maxMaskWidth = 64

// Validate checks every structural rule a loaded Device satisfies: names
// are present and unique, each register has a sane layout (see
// ValidateLayout), and fields of one register do not overlap.
// Failures are *ValidationError.
func (d *Device) Validate() error {
	if d.Name == "" {
		return &ValidationError{Location: "name", Reason: "device name is empty"}
	}

	seen := make(map[string]int, len(d.Registers))
	for i := range d.Registers {
		r := &d.Registers[i]
		loc := registerLocation(i)
		if r.Name == "" {
			return &ValidationError{Location: loc + ".name", Reason: "register name is empty", line: r.line}
		}
		key := strings.ToLower(r.Name)
		if prev, dup := seen[key]; dup {
			return &ValidationError{
				Location: loc + ".name",
				Reason:   fmt.Sprintf("register %q is already declared at %s", r.Name, registerLocation(prev)),
				line:     r.line,
			}
		}
		seen[key] = i

		if err := r.validateLayout(i); err != nil {
			return err
		}
		if err := r.validateFields(i); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLayout checks only what is needed to compute offsets and masks:
// every register has a positive size and at least one field, and every field
// is an ordered range inside its register.
func (d *Device) ValidateLayout() error {
	for i := range d.Registers {
		if err := d.Registers[i].validateLayout(i); err != nil {
			return err
		}
	}
	return nil
}

func (r *Register) validateLayout(idx int) error {
	loc := registerLocation(idx)
	if r.Size <= 0 {
		return &ValidationError{
			Location: loc + ".size",
			Reason:   fmt.Sprintf("register %q has non-positive size %d", r.Name, r.Size),
			line:     r.line,
		}
	}
	if len(r.Fields) == 0 {
		return &ValidationError{
			Location: loc + ".fields",
			Reason:   fmt.Sprintf("register %q has no fields", r.Name),
			line:     r.line,
		}
	}
	for j := range r.Fields {
		f := &r.Fields[j]
		floc := fieldLocation(idx, j) + ".bits"
		switch {
		case f.Bits.Stop < 0:
			return &ValidationError{Location: floc, Reason: fmt.Sprintf("field %q has negative bit index %d", f.Name, f.Bits.Stop), line: f.line}
		case f.Bits.Start < f.Bits.Stop:
			return &ValidationError{Location: floc, Reason: fmt.Sprintf("field %q has reversed bit range %d:%d", f.Name, f.Bits.Start, f.Bits.Stop), line: f.line}
		case f.Bits.Start >= r.Size:
			return &ValidationError{Location: floc, Reason: fmt.Sprintf("field %q bit %d is outside the %d-bit register %q", f.Name, f.Bits.Start, r.Size, r.Name), line: f.line}
		case f.Bits.Width() > maxMaskWidth:
			return &ValidationError{Location: floc, Reason: fmt.Sprintf("field %q is %d bits wide, masks are limited to %d bits", f.Name, f.Bits.Width(), maxMaskWidth), line: f.line}
		}
	}
	return nil
}

func (r *Register) validateFields(idx int) error {
	for j := range r.Fields {
		f := &r.Fields[j]
		loc := fieldLocation(idx, j)
		if f.Name == "" {
			return &ValidationError{Location: loc + ".name", Reason: "field name is empty", line: f.line}
		}
		for k := 0; k < j; k++ {
			o := &r.Fields[k]
			if strings.EqualFold(o.Name, f.Name) {
				return &ValidationError{
					Location: loc + ".name",
					Reason:   fmt.Sprintf("field %q is already declared in register %q", f.Name, r.Name),
					line:     f.line,
				}
			}
			if o.Bits.Overlaps(f.Bits) {
				return &ValidationError{
					Location: loc + ".bits",
					Reason:   fmt.Sprintf("field %q (%d:%d) overlaps field %q (%d:%d)", f.Name, f.Bits.Start, f.Bits.Stop, o.Name, o.Bits.Start, o.Bits.Stop),
					line:     f.line,
				}
			}
		}
	}
	return nil
}
