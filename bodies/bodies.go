// Package bodies holds tables of named celestial bodies and their day
// lengths, loaded from YAML.
package bodies

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/noodlebox/celestial"
	"github.com/noodlebox/celestial/dayclock"
)

//go:embed bodies.yaml
var defaultTable []byte

// Body is a named celestial body and the length of its day.
type Body struct {
	Name    string `yaml:"name"`
	Hours   int    `yaml:"hours"`
	Minutes int    `yaml:"minutes"`
}

// NewClock returns a clock at 0:00:00 configured for the body's day.
func (b Body) NewClock() *dayclock.Clock {
	return dayclock.New(b.Hours, b.Minutes)
}

// Table is an ordered list of bodies.
type Table struct {
	Bodies []Body `yaml:"bodies"`
}

// Default returns the built-in table of the solar system's planets.
func Default() *Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("bodies: embedded table: %v", err))
	}
	return t
}

// Load reads and validates a table from the YAML file at path.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading body table: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a table. Unknown fields are rejected.
func Parse(data []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("parsing body table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that the table is non-empty, that every body has a
// unique non-empty name, at least one hour and no negative minutes.
// Problems are reported together and match celestial.ErrInvalidInput.
func (t *Table) Validate() error {
	if len(t.Bodies) == 0 {
		return fmt.Errorf("body table is empty: %w", celestial.ErrInvalidInput)
	}

	var errs []error
	seen := make(map[string]bool, len(t.Bodies))
	for i, b := range t.Bodies {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("bodies[%d].name is required: %w", i, celestial.ErrInvalidInput))
		} else {
			key := strings.ToLower(b.Name)
			if seen[key] {
				errs = append(errs, fmt.Errorf("bodies[%d]: duplicate name %q: %w", i, b.Name, celestial.ErrInvalidInput))
			}
			seen[key] = true
		}
		if b.Hours < 1 {
			errs = append(errs, fmt.Errorf("bodies[%d].hours must be at least 1, got %d: %w", i, b.Hours, celestial.ErrInvalidInput))
		}
		if b.Minutes < 0 {
			errs = append(errs, fmt.Errorf("bodies[%d].minutes must not be negative, got %d: %w", i, b.Minutes, celestial.ErrInvalidInput))
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the body whose name matches name, ignoring case.
func (t *Table) Lookup(name string) (Body, error) {
	for _, b := range t.Bodies {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return Body{}, fmt.Errorf("body %q: %w", name, celestial.ErrNotFound)
}

// Names returns the body names in table order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Bodies))
	for i, b := range t.Bodies {
		names[i] = b.Name
	}
	return names
}
