package cgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Alia5/ridl/internal/codegen/common"
	"github.com/Alia5/ridl/schema"
)

const bannerFmt = `/**
 * Automatically generated code by RIDL
 * Definition generated using:
 *     %s
 *     %s
 *     %s
 */
/**
 * This is a set of register definitions for %s
 *
%s*/
`

const registerFmt = `
/**
 * Definitions for %s register
 *
%s
*/
#define %s %d
`

const fieldFmt = `
#define %[1]s_Pos (%[2]d)
#define %[1]s_Msk (0x%[3]x << %[1]s_Pos)
#define %[1]s %[1]s_Msk
`

// Render returns the complete header text for dev.
//
// Registers and fields are emitted in declaration order. A register made of
// a single field spanning all of its bits gets only its index macro. Layout
// problems (no fields, bits outside the register) are reported as
// *schema.ValidationError before any text is produced.
func Render(dev *schema.Device, opts Options) (string, error) {
	if dev == nil {
		return "", errors.New("no device to render")
	}
	if err := dev.ValidateLayout(); err != nil {
		return "", err
	}

	var b strings.Builder
	guard := includeGuard(dev.Name)
	if opts.IncludeGuard {
		fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	}

	fmt.Fprintf(&b, bannerFmt,
		dev.Datasheet.Link,
		dev.Datasheet.Title,
		dev.Datasheet.Revision,
		dev.Name,
		common.CommentLines(dev.Description, opts.Width))

	for i := range dev.Registers {
		writeRegister(&b, dev.Name, &dev.Registers[i], opts.Width)
	}

	if opts.IncludeGuard {
		fmt.Fprintf(&b, "\n#endif /* %s */\n", guard)
	}
	return b.String(), nil
}

func writeRegister(b *strings.Builder, device string, r *schema.Register, width int) {
	fmt.Fprintf(b, registerFmt,
		r.Name,
		common.CommentLines(r.Description, width),
		registerSymbol(device, r),
		r.Offset)

	if r.FullWidth() {
		return
	}
	for i := range r.Fields {
		f := &r.Fields[i]
		fmt.Fprintf(b, fieldFmt, fieldSymbol(device, r, f), f.Bits.Stop, f.Bits.Mask())
	}
}
