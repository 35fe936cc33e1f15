// File: format.go
// Title: Log Output Formatters
// Description: Implements the output formats for log entries: structured
//              JSON for machine consumption, plain text, and colored
//              console output for development.
// Author: AugmentedFifth
// Version: v0.1.0
// Created: 2026-08-25
// Modified: 2026-08-25
//
// Change History:
// - 2026-08-25 v0.1.0: Initial implementation

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	brwstringx "github.com/AugmentedFifth/brouwer/utils/stringx"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs
	FormatText

	// FormatConsole outputs colored console logs for development
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatJSON, &ParseError{Input: format, Type: "format"}
	}
}

// Formatter defines the interface for log formatters
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}

// JSONFormatter formats log entries as JSON
type JSONFormatter struct {
	// PrettyPrint enables indented JSON output
	PrettyPrint bool

	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint:     false,
		TimestampFormat: time.RFC3339,
	}
}

// Format formats a log entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := make(map[string]interface{})

	data["timestamp"] = entry.Timestamp.Format(f.TimestampFormat)
	data["level"] = entry.Level.String()
	data["message"] = entry.Message

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	for k, v := range entry.Fields {
		data[k] = v
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
		if marshaler, ok := entry.Error.(json.Marshaler); ok {
			if errData, err := marshaler.MarshalJSON(); err == nil {
				var errorObj map[string]interface{}
				if json.Unmarshal(errData, &errorObj) == nil {
					data["error_details"] = errorObj
				}
			}
		}
	}

	if entry.Duration > 0 {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1000000
	}

	if entry.Caller != nil {
		data["caller"] = fmt.Sprintf("%s:%d", entry.Caller.File, entry.Caller.Line)
	}

	var encoded []byte
	var err error
	if f.PrettyPrint {
		encoded, err = json.MarshalIndent(data, "", "  ")
	} else {
		encoded, err = json.Marshal(data)
	}
	if err != nil {
		return nil, err
	}

	return append(encoded, '\n'), nil
}

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string

	// MaxMessageLength truncates overly long messages (0 = no limit)
	MaxMessageLength int
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
	}
}

// Format formats a log entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteString(" [")
	b.WriteString(entry.Level.ShortString())
	b.WriteString("]")

	if entry.Logger != "" {
		b.WriteString(" ")
		b.WriteString(entry.Logger)
		b.WriteString(":")
	}

	b.WriteString(" ")
	message := entry.Message
	if f.MaxMessageLength > 0 {
		message = brwstringx.Truncate(message, f.MaxMessageLength, "...")
	}
	b.WriteString(message)

	writeFieldsText(&b, entry)

	if entry.Error != nil {
		b.WriteString(" error=")
		b.WriteString(fmt.Sprintf("%q", entry.Error.Error()))
	}

	if entry.Caller != nil {
		b.WriteString(fmt.Sprintf(" (%s:%d)", entry.Caller.File, entry.Caller.Line))
	}

	b.WriteString("\n")

	return []byte(b.String()), nil
}

// ConsoleFormatter formats log entries as colored console output
type ConsoleFormatter struct {
	// TimestampFormat specifies the timestamp format
	TimestampFormat string
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{
		TimestampFormat: "15:04:05.000",
	}
}

// Format formats a log entry with ANSI colors
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteString(" ")
	b.WriteString(entry.Level.Color())
	b.WriteString(entry.Level.ShortString())
	b.WriteString("\033[0m")

	if entry.Logger != "" {
		b.WriteString(" \033[90m")
		b.WriteString(entry.Logger)
		b.WriteString("\033[0m")
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	writeFieldsText(&b, entry)

	if entry.Error != nil {
		b.WriteString(" \033[31merror=")
		b.WriteString(fmt.Sprintf("%q", entry.Error.Error()))
		b.WriteString("\033[0m")
	}

	b.WriteString("\n")

	return []byte(b.String()), nil
}

// writeFieldsText renders entry fields as sorted key=value pairs
func writeFieldsText(b *strings.Builder, entry *Entry) {
	if len(entry.Fields) == 0 && entry.Duration == 0 {
		return
	}

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString("=")
		switch v := entry.Fields[k].(type) {
		case string:
			b.WriteString(fmt.Sprintf("%q", v))
		default:
			b.WriteString(fmt.Sprintf("%v", v))
		}
	}

	if entry.Duration > 0 {
		b.WriteString(fmt.Sprintf(" duration=%s", entry.Duration))
	}
}
