/*
File   : nougo/stdlib/iobuiltin/iobuiltin.go
Package: iobuiltin

Package iobuiltin backs the Write/Read statements with real file
operations (os.ReadFile/os.WriteFile, truncate-vs-append via
os.O_APPEND). These are called directly by eval rather than through the
Builtin descriptor registry, since Write/Read are statements with
dedicated AST nodes, not ordinary calls.
*/
package iobuiltin

import (
	"fmt"
	"os"
	"strings"
)

// WriteLast appends content as a new line at the end of the file
// (Write with op ">>" and no explicit line).
func WriteLast(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open '%s' for append: %w", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(content + "\n"); err != nil {
		return fmt.Errorf("could not write to '%s': %w", path, err)
	}
	return nil
}

// OverwriteAll replaces the file's entire content (Write with op "!>>"
// and no explicit line).
func OverwriteAll(path, content string) error {
	if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("could not write to '%s': %w", path, err)
	}
	return nil
}

// WriteAtLine creates or overwrites a specific 1-based line,
// extending the file with blank lines if it's currently shorter.
func WriteAtLine(path string, line int, content string) error {
	if line < 1 {
		return fmt.Errorf("line number must be >= 1, got %d", line)
	}
	existing, err := os.ReadFile(path)
	var lines []string
	if err == nil {
		lines = splitLines(string(existing))
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("could not read '%s': %w", path, err)
	}
	for len(lines) < line {
		lines = append(lines, "")
	}
	lines[line-1] = content
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		return fmt.Errorf("could not write to '%s': %w", path, err)
	}
	return nil
}

// ReadAll reads a file's full text (Read with line "all").
func ReadAll(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read '%s': %w", path, err)
	}
	return string(content), nil
}

// ReadLine reads a specific 1-based line.
func ReadLine(path string, line int) (string, error) {
	if line < 1 {
		return "", fmt.Errorf("line number must be >= 1, got %d", line)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read '%s': %w", path, err)
	}
	lines := splitLines(string(content))
	if line > len(lines) {
		return "", fmt.Errorf("'%s' has no line %d", path, line)
	}
	return lines[line-1], nil
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
