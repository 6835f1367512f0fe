package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpper(t *testing.T) {
	assert.Equal(t, "INA219", Upper("ina219"))
	assert.Equal(t, "SHUNT VOLTAGE", Upper("Shunt Voltage"))
	assert.Equal(t, "STRASSE", Upper("straße"))
	assert.Equal(t, "", Upper(""))
}

func TestIdentifier(t *testing.T) {
	tests := map[string]string{
		"Configuration":   "CONFIGURATION",
		"Shunt Voltage":   "SHUNT_VOLTAGE",
		"bus  voltage":    "BUS__VOLTAGE",
		"ALREADY_UPPER":   "ALREADY_UPPER",
		"mixed Case_name": "MIXED_CASE_NAME",
	}
	for in, want := range tests {
		got := Identifier(in)
		assert.Equal(t, want, got, in)
		assert.Equal(t, got, Identifier(got), "idempotent for %q", in)
	}
}

func TestMacroName(t *testing.T) {
	assert.Equal(t, "INA219_CONFIGURATION_INDEX", MacroName("INA219", "CONFIGURATION", "INDEX"))
	assert.Equal(t, "A", MacroName("A"))
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"":             "",
		"Width":        "width",
		"IncludeGuard": "include_guard",
		"XMLParser":    "xml_parser",
		"logFile":      "log_file",
		"already_done": "already_done",
	}
	for in, want := range tests {
		assert.Equal(t, want, ToSnakeCase(in), in)
	}
}
