package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Format selects the document syntax handed to Parse.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath picks a Format from a file extension. ".ridl" files are YAML.
func FormatForPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".ridl":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported schema extension %q (expected .yaml, .yml, .ridl, .json or .toml)", ext)
	}
}

type rawDatasheet struct {
	Link     string `yaml:"link" json:"link" toml:"link"`
	Title    string `yaml:"title" json:"title" toml:"title"`
	Revision string `yaml:"revision" json:"revision" toml:"revision"`
}

type rawDevice struct {
	Name        string        `yaml:"name" json:"name" toml:"name"`
	Description string        `yaml:"description" json:"description" toml:"description"`
	Datasheet   rawDatasheet  `yaml:"datasheet" json:"datasheet" toml:"datasheet"`
	Registers   []rawRegister `yaml:"registers" json:"registers" toml:"registers"`
}

type rawRegister struct {
	Name        string     `yaml:"name" json:"name" toml:"name"`
	Description string     `yaml:"description" json:"description" toml:"description"`
	Offset      any        `yaml:"offset" json:"offset" toml:"offset"`
	Size        any        `yaml:"size" json:"size" toml:"size"`
	Fields      []rawField `yaml:"fields" json:"fields" toml:"fields"`

	line int
}

type rawField struct {
	Name        string `yaml:"name" json:"name" toml:"name"`
	Description string `yaml:"description" json:"description" toml:"description"`
	Bits        any    `yaml:"bits" json:"bits" toml:"bits"`

	line int
}

func (r *rawRegister) UnmarshalYAML(n *yaml.Node) error {
	type plain rawRegister
	if err := n.Decode((*plain)(r)); err != nil {
		return err
	}
	r.line = n.Line
	return nil
}

func (f *rawField) UnmarshalYAML(n *yaml.Node) error {
	type plain rawField
	if err := n.Decode((*plain)(f)); err != nil {
		return err
	}
	f.line = n.Line
	return nil
}

// Parse decodes and validates a device description.
//
// offset and size accept integers or integer strings with Go base prefixes
// ("0x10"). bits accepts a single index, a "start:stop" or "start..stop"
// string, or a [start, stop] list. Every failure is a *ParseError; structural
// problems additionally wrap a *ValidationError.
func Parse(data []byte, format Format) (*Device, error) {
	return parse(data, format)
}

// ParseFile reads path and parses it in the format implied by its extension.
func ParseFile(path string) (*Device, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, &ParseError{File: path, Msg: err.Error(), Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		cause := err
		var pe *fs.PathError
		if errors.As(err, &pe) {
			cause = pe.Err
		}
		return nil, &ParseError{File: path, Msg: "read schema: " + cause.Error(), Err: err}
	}
	dev, err := parse(data, format)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.File = path
		}
		return nil, err
	}
	return dev, nil
}

func parse(data []byte, format Format) (*Device, error) {
	var raw rawDevice
	if pe := decode(data, format, &raw); pe != nil {
		return nil, pe
	}
	dev, err := raw.build()
	if err != nil {
		return nil, err
	}
	if err := dev.Validate(); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return nil, &ParseError{Line: ve.line, Location: ve.Location, Msg: ve.Reason, Err: ve}
		}
		return nil, &ParseError{Msg: err.Error(), Err: err}
	}
	return dev, nil
}

var yamlLinePrefixRe = regexp.MustCompile(`^line \d+: `)

func decode(data []byte, format Format, raw *rawDevice) *ParseError {
	switch format {
	case FormatYAML:
		var doc yaml.Node
		err := yaml.Unmarshal(data, &doc)
		if err == nil {
			if doc.Kind == 0 || len(doc.Content) == 0 {
				return &ParseError{Msg: "empty document"}
			}
			err = doc.Decode(raw)
		}
		if err != nil {
			return &ParseError{Line: lineFromMessage(yamlLineRe, err.Error()), Msg: yamlMessage(err), Err: err}
		}
	case FormatJSON:
		if err := json.Unmarshal(data, raw); err != nil {
			pe := &ParseError{Msg: err.Error(), Err: err}
			var se *json.SyntaxError
			var te *json.UnmarshalTypeError
			switch {
			case errors.As(err, &se):
				pe.Line = lineAtOffset(data, se.Offset)
			case errors.As(err, &te):
				pe.Line = lineAtOffset(data, te.Offset)
				pe.Location = te.Field
			}
			return pe
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, raw); err != nil {
			msg := err.Error()
			pe := &ParseError{Line: lineFromMessage(tomlPosRe, msg), Msg: msg, Err: err}
			if pos := tomlPosRe.FindString(msg); pos != "" {
				pe.Msg = strings.TrimSpace(strings.TrimPrefix(msg[len(pos):], ":"))
			}
			return pe
		}
	default:
		return &ParseError{Msg: fmt.Sprintf("unknown schema format %s", format)}
	}
	return nil
}

// yamlMessage strips the decoder's "yaml: line N:" framing, keeping the
// first reported problem.
func yamlMessage(err error) string {
	s := strings.TrimPrefix(err.Error(), "yaml: ")
	s = strings.TrimPrefix(s, "unmarshal errors:\n")
	s, _, _ = strings.Cut(s, "\n")
	s = strings.TrimSpace(s)
	return yamlLinePrefixRe.ReplaceAllString(s, "")
}

func (raw *rawDevice) build() (*Device, error) {
	dev := &Device{
		Name:        strings.TrimSpace(raw.Name),
		Description: raw.Description,
		Datasheet:   Datasheet(raw.Datasheet),
		Registers:   make([]Register, 0, len(raw.Registers)),
	}
	for i, rr := range raw.Registers {
		loc := registerLocation(i)
		offset, err := toUint(rr.Offset)
		if err != nil {
			return nil, &ParseError{Line: rr.line, Location: loc + ".offset", Msg: err.Error(), Err: err}
		}
		size, err := toInt(rr.Size)
		if err != nil {
			return nil, &ParseError{Line: rr.line, Location: loc + ".size", Msg: err.Error(), Err: err}
		}
		reg := Register{
			Name:        strings.TrimSpace(rr.Name),
			Description: rr.Description,
			Offset:      offset,
			Size:        size,
			Fields:      make([]Field, 0, len(rr.Fields)),
			line:        rr.line,
		}
		for j, rf := range rr.Fields {
			bits, err := parseBitRange(rf.Bits)
			if err != nil {
				return nil, &ParseError{Line: rf.line, Location: fieldLocation(i, j) + ".bits", Msg: err.Error(), Err: err}
			}
			reg.Fields = append(reg.Fields, Field{
				Name:        strings.TrimSpace(rf.Name),
				Description: rf.Description,
				Bits:        bits,
				line:        rf.line,
			})
		}
		dev.Registers = append(dev.Registers, reg)
	}
	return dev, nil
}

func registerLocation(i int) string {
	return fmt.Sprintf("registers[%d]", i)
}

func fieldLocation(reg, field int) string {
	return fmt.Sprintf("registers[%d].fields[%d]", reg, field)
}
