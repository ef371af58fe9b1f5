// Package fixture loads named search problems from YAML documents.
//
// A document lists problems under a top-level "problems" key; each entry
// has a unique name, a kind, and the configuration section for that kind:
//
//	problems:
//	  - name: three-four
//	    kind: pitchers
//	    pitchers:
//	      capacities: [3, 4]
//	      target: 2
//
// Documents are decoded strictly (unknown keys are errors), checked with
// struct validation tags, then every entry is built once so that malformed
// grids or jug sets are reported at load time. Builtin returns the embedded
// reference scenarios.
package fixture

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/statespace/islands"
	"github.com/katalvlaran/statespace/maze"
	"github.com/katalvlaran/statespace/pitchers"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Sentinel errors for fixture loading.
var (
	// ErrInvalidDocument indicates a document that fails to decode,
	// validate or build.
	ErrInvalidDocument = errors.New("fixture: invalid document")
	// ErrUnknownProblem indicates a lookup of a name not in the document.
	ErrUnknownProblem = errors.New("fixture: unknown problem")
)

// validate is the validator instance for fixture documents.
// Initialized in init().
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Kind names the adapter an entry configures.
type Kind string

const (
	KindIslands  Kind = "islands"
	KindMaze     Kind = "maze"
	KindPitchers Kind = "pitchers"
)

// Document is a decoded fixture file.
type Document struct {
	Problems []Entry `yaml:"problems" validate:"required,min=1,unique=Name,dive"`
}

// Entry is one named problem. Exactly the section matching Kind is set.
type Entry struct {
	Name     string           `yaml:"name" validate:"required"`
	Kind     Kind             `yaml:"kind" validate:"required,oneof=islands maze pitchers"`
	Islands  *islands.Config  `yaml:"islands,omitempty" validate:"required_if=Kind islands,excluded_unless=Kind islands"`
	Maze     *maze.Config     `yaml:"maze,omitempty" validate:"required_if=Kind maze,excluded_unless=Kind maze"`
	Pitchers *pitchers.Config `yaml:"pitchers,omitempty" validate:"required_if=Kind pitchers,excluded_unless=Kind pitchers"`
}

// Parse decodes and validates a document.
// Every failure wraps ErrInvalidDocument; construction errors from the
// adapters are wrapped as well, so errors.Is also matches e.g.
// grid.ErrNonRectangular.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	for _, e := range doc.Problems {
		if err := e.check(); err != nil {
			return nil, fmt.Errorf("%w: problem %q: %w", ErrInvalidDocument, e.Name, err)
		}
	}
	return &doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	return Parse(data)
}

// Builtin returns the embedded reference scenarios: a 7×7 islands map,
// a 12×12 maze and the five-jug puzzle.
func Builtin() (*Document, error) {
	return Parse(builtinYAML)
}

// Names returns the entry names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Problems))
	for i, e := range d.Problems {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the entry called name, or ErrUnknownProblem.
func (d *Document) Lookup(name string) (Entry, error) {
	for _, e := range d.Problems {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrUnknownProblem, name)
}

// check builds the entry's problem and discards it.
func (e Entry) check() error {
	var err error
	switch e.Kind {
	case KindIslands:
		_, err = islands.New(*e.Islands)
	case KindMaze:
		_, err = maze.New(*e.Maze)
	case KindPitchers:
		_, err = pitchers.New(*e.Pitchers)
	default:
		err = fmt.Errorf("kind %q", e.Kind)
	}
	return err
}
