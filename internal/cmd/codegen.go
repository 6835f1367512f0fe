package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/ridl/internal/codegen/generator"
	cgen "github.com/Alia5/ridl/internal/codegen/generator/c"
	"github.com/Alia5/ridl/internal/configpaths"
)

type Generate struct {
	Schema       string `arg:"" help:"Device schema file (.yaml, .yml, .ridl, .json or .toml)" type:"path"`
	Output       string `short:"o" help:"Write the header to this file instead of stdout" type:"path" env:"RIDL_OUTPUT"`
	Width        int    `help:"Column limit for wrapped comment text" default:"80" env:"RIDL_WRAP_WIDTH"`
	IncludeGuard bool   `help:"Wrap the header in an #ifndef include guard" env:"RIDL_INCLUDE_GUARD"`
	Lang         string `help:"Target language" default:"c" enum:"c" env:"RIDL_LANG"`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger, stdout io.Writer) error {
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}

	gen := generator.New(logger)
	opts := cgen.Options{Width: c.Width, IncludeGuard: c.IncludeGuard}

	// Render fully before touching the destination so a failed run leaves
	// no partial header behind.
	var buf bytes.Buffer
	if err := gen.GenerateFile(c.Lang, c.Schema, &buf, opts); err != nil {
		logger.Debug("Header generation failed", "schema", c.Schema)
		return err
	}

	if c.Output == "" {
		buf.WriteByte('\n')
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	if err := configpaths.EnsureDir(c.Output); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(c.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	logger.Info("Wrote header", "schema", c.Schema, "output", c.Output)
	return nil
}
