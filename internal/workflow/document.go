// Package workflow parses and rewrites GitHub Actions workflow files. The
// document model types only the fields the fix routines touch; everything
// else round-trips through inline maps so an edited file always remains
// parseable as a workflow.
package workflow

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Document is a workflow definition file.
type Document struct {
	Name string          `yaml:"name,omitempty"`
	On   any             `yaml:"on,omitempty"`
	Jobs map[string]*Job `yaml:"jobs,omitempty"`
	Rest map[string]any  `yaml:",inline"`
}

// Job is one job within a workflow.
type Job struct {
	Permissions map[string]string `yaml:"permissions,omitempty"`
	Strategy    *Strategy         `yaml:"strategy,omitempty"`
	Steps       []*Step           `yaml:"steps,omitempty"`
	Rest        map[string]any    `yaml:",inline"`
}

// Strategy holds a job's build matrix.
type Strategy struct {
	Matrix map[string]any `yaml:"matrix,omitempty"`
	Rest   map[string]any `yaml:",inline"`
}

// Step is one action invocation within a job.
type Step struct {
	Name            string         `yaml:"name,omitempty"`
	Uses            string         `yaml:"uses,omitempty"`
	ContinueOnError bool           `yaml:"continue-on-error,omitempty"`
	Rest            map[string]any `yaml:",inline"`
}

// Load reads and parses the workflow file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing workflow %s: %w", path, err)
	}
	return &doc, nil
}

// Save serialises the document back to path, overwriting the previous
// content. There is no partial-write protection.
func (d *Document) Save(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("serialising workflow %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0o644)
}

// DisableTriggers replaces the document's trigger set with manual dispatch
// only, so the workflow no longer runs automatically.
func (d *Document) DisableTriggers() {
	d.On = map[string]any{"workflow_dispatch": nil}
}
