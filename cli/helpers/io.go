package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadInput reads bulk task input from a file path, or from stdin when
// the source is "-" or empty.
func ReadInput(source string) ([]byte, error) {
	if source == "" || source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return data, nil
}

// OutputWriter handles writing machine readable output.
type OutputWriter struct {
	writer io.Writer
}

// NewOutputWriter creates an output writer targeting stdout.
func NewOutputWriter() *OutputWriter {
	return &OutputWriter{writer: os.Stdout}
}

// NewOutputWriterTo creates an output writer targeting the given writer.
func NewOutputWriterTo(w io.Writer) *OutputWriter {
	return &OutputWriter{writer: w}
}

// WriteJSON writes the value as indented JSON followed by a newline.
func (w *OutputWriter) WriteJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if _, err := fmt.Fprintln(w.writer, string(data)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
