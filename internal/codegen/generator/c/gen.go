package cgen

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/ridl/schema"
)

// Options controls how a device header is rendered.
type Options struct {
	// Width is the comment wrap column. 0 selects common.DefaultCommentWidth.
	Width int
	// IncludeGuard wraps the output in #ifndef/#define/#endif.
	IncludeGuard bool
}

// Generate renders the register header for dev and writes it to w.
// Nothing is written when rendering fails.
func Generate(logger *slog.Logger, w io.Writer, dev *schema.Device, opts Options) error {
	text, err := Render(dev, opts)
	if err != nil {
		return fmt.Errorf("render %s header: %w", deviceLabel(dev), err)
	}
	n, err := io.WriteString(w, text)
	if err != nil {
		return fmt.Errorf("write %s header: %w", dev.Name, err)
	}

	fields := 0
	for _, r := range dev.Registers {
		if !r.FullWidth() {
			fields += len(r.Fields)
		}
	}
	logger.Info("Generated C header",
		"device", dev.Name,
		"registers", len(dev.Registers),
		"fieldMacros", fields,
		"bytes", n)
	return nil
}

func deviceLabel(dev *schema.Device) string {
	if dev == nil || dev.Name == "" {
		return "device"
	}
	return dev.Name
}
