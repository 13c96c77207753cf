package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// File is the root of a menu manifest (pergola.yaml).
type File struct {
	Title    string  `yaml:"title"`
	Options  []Entry `yaml:"options"`
	Fallback *Entry  `yaml:"fallback,omitempty"`
}

// Entry declares one menu option: what it is called, what input triggers it
// and what it does. The fallback entry uses only the action; its name and
// pattern are ignored.
type Entry struct {
	Name    string         `yaml:"name,omitempty"`
	Pattern string         `yaml:"pattern,omitempty"`
	Action  map[string]any `yaml:"action"`
}

// Action is the decoded form of an Entry's action map. Exactly one of the
// three variants is set.
type Action struct {
	Message string      `mapstructure:"message"`
	Exec    *ExecAction `mapstructure:"exec"`
	Quit    bool        `mapstructure:"quit"`
}

// ExecAction runs a local command and streams its output into the menu.
type ExecAction struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// Load reads and parses a manifest file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return f, nil
}

// Parse decodes manifest YAML. Unknown fields are rejected, so typos
// surface as errors instead of silently dropped configuration.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest is empty")
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &f, nil
}

// actionKeys are the recognized action variants.
var actionKeys = map[string]bool{
	"message": true,
	"exec":    true,
	"quit":    true,
}

// decodeAction converts an entry's raw action map into an Action. The map
// must carry exactly one recognized key; its value is decoded strictly, so
// stray fields under exec are errors too.
func decodeAction(raw map[string]any) (Action, error) {
	if len(raw) == 0 {
		return Action{}, errors.New("entry has no action")
	}
	if len(raw) > 1 {
		keys := make([]string, 0, len(raw))
		for k := range raw {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return Action{}, fmt.Errorf("entry has multiple actions (%v); declare exactly one", keys)
	}
	for k := range raw {
		if !actionKeys[k] {
			return Action{}, fmt.Errorf("unknown action %q; expected message, exec or quit", k)
		}
	}

	var action Action
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &action,
		ErrorUnused: true,
	})
	if err != nil {
		return Action{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Action{}, fmt.Errorf("decode action: %w", err)
	}

	if action.Exec != nil && action.Exec.Command == "" {
		return Action{}, errors.New("exec action missing command")
	}
	return action, nil
}

// Scaffold returns a starter manifest, the payload of `pergola init`.
func Scaffold() []byte {
	return []byte(`title: MY COOL CLI APP

options:
  - name: Say hello
    pattern: h
    action:
      message: "**hello!**"

  - name: Show date
    pattern: d
    action:
      exec:
        command: date

  - name: Quit
    pattern: q
    action:
      quit: true

fallback:
  action:
    message: unknown input, try again
`)
}
