package schema

import (
	"regexp"
	"strconv"
	"strings"
)

// ParseError is returned by Parse and ParseFile for any document that could
// not be turned into a Device.
type ParseError struct {
	File     string
	Line     int    // 1-based, 0 when unknown
	Location string // e.g. "registers[1].fields[0].bits"
	Msg      string
	Err      error
}

func (e *ParseError) Error() string {
	var parts []string
	pos := e.File
	if e.Line > 0 {
		if pos != "" {
			pos += ":"
		}
		pos += strconv.Itoa(e.Line)
	}
	if pos != "" {
		parts = append(parts, pos)
	}
	if e.Location != "" {
		parts = append(parts, e.Location)
	}
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	parts = append(parts, msg)
	return strings.Join(parts, ": ")
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a device description that decoded fine but
// breaks a structural rule, such as a register without fields.
type ValidationError struct {
	Location string
	Reason   string

	line int
}

func (e *ValidationError) Error() string {
	if e.Location == "" {
		return e.Reason
	}
	return e.Location + ": " + e.Reason
}

// Line returns the source line the offending element was declared on, or 0.
func (e *ValidationError) Line() int { return e.line }

var (
	yamlLineRe = regexp.MustCompile(`line (\d+)`)
	tomlPosRe  = regexp.MustCompile(`^\((\d+), (\d+)\)`)
)

// lineFromMessage pulls the first line number out of decoder error text.
func lineFromMessage(re *regexp.Regexp, msg string) int {
	m := re.FindStringSubmatch(msg)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// lineAtOffset converts a byte offset into a 1-based line number.
func lineAtOffset(data []byte, off int64) int {
	if off < 0 {
		return 0
	}
	if off > int64(len(data)) {
		off = int64(len(data))
	}
	line := 1
	for _, c := range data[:off] {
		if c == '\n' {
			line++
		}
	}
	return line
}
