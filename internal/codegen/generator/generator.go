package generator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"

	cgen "github.com/Alia5/ridl/internal/codegen/generator/c"
	"github.com/Alia5/ridl/schema"
)

type Generator struct {
	logger *slog.Logger
}

// LanguageGenerator renders one device into w.
type LanguageGenerator func(logger *slog.Logger, w io.Writer, dev *schema.Device, opts cgen.Options) error

var generators = map[string]LanguageGenerator{
	"c": cgen.Generate,
}

func New(logger *slog.Logger) *Generator {
	return &Generator{
		logger: logger,
	}
}

// Languages returns the supported target names in sorted order.
func Languages() []string {
	names := make([]string, 0, len(generators))
	for k := range generators {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (g *Generator) GenerateLang(lang string, w io.Writer, dev *schema.Device, opts cgen.Options) error {
	gen, ok := generators[lang]
	if !ok {
		return fmt.Errorf("unsupported language '%s' (supported: %v)", lang, Languages())
	}
	if dev == nil {
		return errors.New("no device to generate")
	}

	g.logger.Debug("Generating register definitions", "language", lang, "device", dev.Name)
	return gen(g.logger, w, dev, opts)
}

// GenerateFile loads a schema from path and renders it for lang into w.
func (g *Generator) GenerateFile(lang, path string, w io.Writer, opts cgen.Options) error {
	g.logger.Info("Loading device schema", "path", path)
	dev, err := schema.ParseFile(path)
	if err != nil {
		return err
	}
	g.logger.Debug("Loaded device schema", "device", dev.Name, "registers", len(dev.Registers))
	return g.GenerateLang(lang, w, dev, opts)
}
