// Package ingest extracts study-material file references from free text and
// resolves them against the local filesystem.
package ingest

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	windowsPathPattern = regexp.MustCompile(`(?i)([A-Za-z]:\\[^\r\n"]+?\.pdf)`)
	unixPathPattern    = regexp.MustCompile(`(?i)(/[^\s"']+\.pdf)`)
	pdfNamePattern     = regexp.MustCompile(`(?i)([^\s\\/"']+\.pdf)`)
)

// ExtractPDFRefs pulls PDF references out of free text: absolute paths
// first, then bare file names that are not already covered by a path.
func ExtractPDFRefs(text string) []string {
	if text == "" {
		return nil
	}
	var refs []string
	seen := make(map[string]bool)
	basenames := make(map[string]bool)

	for _, p := range []*regexp.Regexp{windowsPathPattern, unixPathPattern} {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			path := m[1]
			if !seen[path] {
				seen[path] = true
				basenames[strings.ToLower(baseName(path))] = true
				refs = append(refs, path)
			}
		}
	}
	for _, m := range pdfNamePattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if seen[name] || basenames[strings.ToLower(name)] {
			continue
		}
		seen[name] = true
		refs = append(refs, name)
	}
	return refs
}

// ResolvePath locates a candidate reference: an existing absolute path wins,
// otherwise the candidate is tried under each search dir in order. Returns
// "" when nothing exists.
func ResolvePath(candidate string, searchDirs []string) string {
	if filepath.IsAbs(candidate) {
		if fileExists(candidate) {
			return candidate
		}
		return ""
	}
	for _, dir := range searchDirs {
		full := filepath.Join(dir, candidate)
		if fileExists(full) {
			return full
		}
	}
	return ""
}

// DefaultSearchDirs lists the directories material names are resolved
// against: the working directory, then the user's Downloads and Documents.
func DefaultSearchDirs() []string {
	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Downloads"), filepath.Join(home, "Documents"))
	}
	var existing []string
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			existing = append(existing, d)
		}
	}
	return existing
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// baseName handles both native and Windows-style separators, which
// filepath.Base alone does not on non-Windows hosts.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}
