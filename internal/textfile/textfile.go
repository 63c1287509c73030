// Package textfile loads whole text files into memory through mmap so the
// pipeline always works on fully buffered text.
package textfile

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Read maps path read-only and returns its content as a string.
// Empty files are returned without mapping, mmap rejects zero-length maps.
func Read(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if st.IsDir() {
		return "", fmt.Errorf("read %s: is a directory", path)
	}
	if st.Size() == 0 {
		return "", nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("mmap %s: %w", path, err)
	}
	// копируем в кучу Go, после Unmap срез становится недействителен
	text := string(m)
	if err := m.Unmap(); err != nil {
		return "", fmt.Errorf("munmap %s: %w", path, err)
	}
	return text, nil
}

// ReadAll concatenates the given files separated by newlines.
func ReadAll(paths ...string) (string, error) {
	var size int
	texts := make([]string, 0, len(paths))
	for _, p := range paths {
		t, err := Read(p)
		if err != nil {
			return "", err
		}
		size += len(t) + 1
		texts = append(texts, t)
	}
	buf := make([]byte, 0, size)
	for i, t := range texts {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = append(buf, t...)
	}
	return string(buf), nil
}
