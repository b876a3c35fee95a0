package core

import (
	"sort"

	"conway/pkg/life"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by Lookup for unregistered names.
var ErrUnknownPattern = errors.New("core: unknown pattern")

// Factory builds an initial pattern for a cols×rows grid using an optional
// configuration map.
type Factory func(cols, rows int, cfg map[string]string) life.Pattern

var patterns = map[string]Factory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Patterns exposes the registry of available pattern factories.
func Patterns() map[string]Factory {
	return patterns
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "%q (have %v)", name, Names())
	}
	return f, nil
}
