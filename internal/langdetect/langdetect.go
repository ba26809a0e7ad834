// Package langdetect scans a file tree for the CodeQL-supported languages
// actually present, bucketing file extensions into a fixed table.
package langdetect

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// extToLanguage maps lowercased file extensions to their CodeQL language.
var extToLanguage = map[string]string{
	".js":   "javascript",
	".jsx":  "javascript",
	".ts":   "javascript",
	".tsx":  "javascript",
	".vue":  "javascript",
	".py":   "python",
	".java": "java",
	".cs":   "csharp",
	".cpp":  "cpp",
	".c":    "cpp",
	".cc":   "cpp",
	".cxx":  "cpp",
	".h":    "cpp",
	".hpp":  "cpp",
	".go":   "go",
	".rb":   "ruby",
}

// Detect walks the tree rooted at root and returns the supported languages
// observed, in order of first discovery with duplicates suppressed. Hidden
// directories and node_modules are pruned from the walk.
func Detect(root string) []string {
	var detected []string
	seen := make(map[string]bool)

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || name == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(d.Name()))
		if lang, ok := extToLanguage[ext]; ok && !seen[lang] {
			seen[lang] = true
			detected = append(detected, lang)
		}
		return nil
	})

	return detected
}
