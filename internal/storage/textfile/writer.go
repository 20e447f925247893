package textfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Writer пишет UTF-8 текст в файл, пересоздаваемый при каждом запуске.
// Один писатель, только дозапись.
type Writer struct {
	path string
	file *os.File
	buf  *bufio.Writer
}

// Create усекает файл (или создаёт его вместе с каталогом)
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		path: path,
		file: file,
		buf:  bufio.NewWriter(file),
	}, nil
}

func (w *Writer) WriteBlock(block string) error {
	if _, err := w.buf.WriteString(block); err != nil {
		return fmt.Errorf("failed to write block: %w", err)
	}
	return nil
}

func (w *Writer) Path() string {
	return w.path
}

// Close сбрасывает буфер. Уже записанное остаётся в файле даже после ошибки прогона.
func (w *Writer) Close() error {
	flushErr := w.buf.Flush()
	closeErr := w.file.Close()
	if flushErr != nil {
		return fmt.Errorf("failed to flush output: %w", flushErr)
	}
	return closeErr
}
