// Package extract loads document text from plain-format files. PDF and
// DOCX sources are expected to be converted to text upstream; this package
// handles the formats that need no structural parser.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
)

// supportedExtensions lists the file types ReadFile accepts.
var supportedExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".md":   true,
}

// Supported reports whether the file extension is one this package reads.
func Supported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// ReadFile loads a text document. Content is decoded as UTF-8 when valid,
// otherwise as ISO 8859-1 and finally Windows-1252, mirroring the encodings
// scientific paper dumps commonly arrive in.
func ReadFile(path string) (string, error) {
	if !Supported(path) {
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if utf8.Valid(raw) {
		return string(raw), nil
	}
	for _, cm := range []*charmap.Charmap{charmap.ISO8859_1, charmap.Windows1252} {
		decoded, err := cm.NewDecoder().Bytes(raw)
		if err == nil {
			return string(decoded), nil
		}
	}
	return "", fmt.Errorf("failed to decode %s with any known encoding", path)
}

// DetectTitle guesses the document title: the first line of plausible title
// length among the first ten lines, else the cleaned-up file name.
func DetectTitle(text, path string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) > 20 && len(line) < 200 {
			return line
		}
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.ReplaceAll(stem, "_", " ")
	stem = strings.ReplaceAll(stem, "-", " ")
	return cases.Title(language.English).String(stem)
}
