// Package writers resolves a log output specification into an io.WriteCloser.
package writers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriterType represents the type of writer to create
type WriterType string

const (
	WriterTypeStdout WriterType = "stdout"
	WriterTypeStderr WriterType = "stderr"
	WriterTypeFile   WriterType = "file"
)

// ErrUnsupportedOutput is returned for output specs that are not stdout,
// stderr, or a file path.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// stdStream wraps stdout or stderr so closing it leaves the stream open.
type stdStream struct {
	*os.File
}

// Close is a no-op; the process owns its standard streams.
func (stdStream) Close() error { return nil }

// CreateWriter creates an io.WriteCloser based on the output specification.
// Closing a stdout or stderr writer does nothing; closing a file writer
// closes the file.
// Supported formats:
//   - "stderr" or "" - writes to os.Stderr
//   - "stdout" - writes to os.Stdout
//   - "file:///path/to/file" - writes to file (creates directories if needed)
//   - "/path/to/file" - writes to file (creates directories if needed)
func CreateWriter(output string) (io.WriteCloser, error) {
	if err := ValidateOutput(output); err != nil {
		return nil, err
	}

	switch ParseWriterType(output) {
	case WriterTypeStdout:
		return stdStream{os.Stdout}, nil
	case WriterTypeStderr:
		return stdStream{os.Stderr}, nil
	default:
		return createFileWriter(strings.TrimPrefix(output, "file://"))
	}
}

// ValidateOutput checks an output specification without opening anything.
func ValidateOutput(output string) error {
	switch {
	case output == "" || output == "stdout" || output == "stderr":
		return nil
	case strings.HasPrefix(output, "file://"):
		if strings.TrimPrefix(output, "file://") == "" {
			return fmt.Errorf("%w: empty file path", ErrUnsupportedOutput)
		}
		return nil
	case isFilePath(output):
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutput, output)
	}
}

// isFilePath determines if the string represents a local file path
func isFilePath(path string) bool {
	// Reject URLs with schemes other than file://
	if strings.Contains(path, "://") && !strings.HasPrefix(path, "file://") {
		return false
	}

	return strings.Contains(path, "/") || strings.Contains(path, "\\")
}

// createFileWriter creates a file writer, ensuring the directory exists
func createFileWriter(filePath string) (*os.File, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	// append, so restarts don't clobber earlier logs
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}

	return file, nil
}

// ParseWriterType determines the writer type from an output string
func ParseWriterType(output string) WriterType {
	switch output {
	case "", "stderr":
		return WriterTypeStderr
	case "stdout":
		return WriterTypeStdout
	default:
		return WriterTypeFile
	}
}
