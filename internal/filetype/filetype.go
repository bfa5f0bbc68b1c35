// Package filetype identifies the kind of a file from its name.
//
// A small table of common types is embedded as YAML and consulted first.
// Names it does not cover are matched against the chroma lexer registry,
// which knows several hundred languages by filename pattern.
package filetype

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/lexers"
	"gopkg.in/yaml.v3"
)

// Unknown is the label reported when nothing matches.
const Unknown = "Unknown"

//go:embed filetypes.yaml
var builtinTable []byte

// Type is one entry of the file type table.
type Type struct {
	Label      string   `yaml:"label"`
	Extensions []string `yaml:"extensions"`
	Names      []string `yaml:"names"`
}

// Registry resolves file names to type labels.
type Registry struct {
	byName map[string]string
	byExt  map[string]string
	// fallback consults the lexer registry when the table has no match.
	fallback bool
}

// Parse builds a registry from a YAML type table.
func Parse(data []byte) (*Registry, error) {
	var types []Type
	if err := yaml.Unmarshal(data, &types); err != nil {
		return nil, fmt.Errorf("parsing file type table: %w", err)
	}

	r := &Registry{
		byName:   make(map[string]string),
		byExt:    make(map[string]string),
		fallback: true,
	}
	for _, t := range types {
		if t.Label == "" {
			return nil, fmt.Errorf("file type table: entry without label")
		}
		for _, n := range t.Names {
			r.byName[strings.ToLower(n)] = t.Label
		}
		for _, e := range t.Extensions {
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			r.byExt[strings.ToLower(e)] = t.Label
		}
	}
	return r, nil
}

// WithoutFallback returns a copy of the registry that never consults the
// lexer registry.
func (r *Registry) WithoutFallback() *Registry {
	c := *r
	c.fallback = false
	return &c
}

// Identify returns the type label for the given path or file name.
func (r *Registry) Identify(path string) string {
	if path == "" {
		return Unknown
	}
	base := filepath.Base(path)
	if label, ok := r.byName[strings.ToLower(base)]; ok {
		return label
	}
	if label, ok := r.byExt[strings.ToLower(filepath.Ext(base))]; ok {
		return label
	}
	if r.fallback {
		if lexer := lexers.Match(base); lexer != nil {
			return lexer.Config().Name
		}
	}
	return Unknown
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the registry built from the embedded table.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		r, err := Parse(builtinTable)
		if err != nil {
			// The embedded table is part of the binary.
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Identify resolves path using the default registry.
func Identify(path string) string {
	return Default().Identify(path)
}
