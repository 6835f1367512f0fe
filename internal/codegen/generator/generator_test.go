package generator_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/ridl/internal/codegen/generator"
	cgen "github.com/Alia5/ridl/internal/codegen/generator/c"
	"github.com/Alia5/ridl/schema"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"c"}, generator.Languages())
}

func TestGenerateLangUnknown(t *testing.T) {
	g := generator.New(discardLogger())
	var out bytes.Buffer
	err := g.GenerateLang("cobol", &out, &schema.Device{Name: "d"}, cgen.Options{})
	assert.EqualError(t, err, "unsupported language 'cobol' (supported: [c])")
	assert.Zero(t, out.Len())
}

func TestGenerateLangNilDevice(t *testing.T) {
	g := generator.New(discardLogger())
	var out bytes.Buffer
	assert.EqualError(t, g.GenerateLang("c", &out, nil, cgen.Options{}), "no device to generate")
	assert.Zero(t, out.Len())
}

func TestGenerateFile(t *testing.T) {
	path := filepath.Join("..", "..", "..", "schema", "testdata", "ina219.toml")
	g := generator.New(discardLogger())

	var out bytes.Buffer
	require.NoError(t, g.GenerateFile("c", path, &out, cgen.Options{}))
	assert.Contains(t, out.String(), "#define INA219_CONFIGURATION_RESET_Pos (15)\n")
	assert.Contains(t, out.String(), "#define INA219_CONFIGURATION_RESET_Msk (0x1 << INA219_CONFIGURATION_RESET_Pos)\n")
	assert.Contains(t, out.String(), "#define INA219_SHUNT_VOLTAGE_INDEX 1\n")
}

func TestGenerateFileParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: dev\nregisters:\n  - name: A\n    size: 8\n    offset: 0\n    fields: []\n"), 0o644))

	g := generator.New(discardLogger())
	var out bytes.Buffer
	err := g.GenerateFile("c", path, &out, cgen.Options{})

	var pe *schema.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, path, pe.File)
	assert.Zero(t, out.Len())
}
