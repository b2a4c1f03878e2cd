package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

const (
	EnvPath         = "ITEM_CATALOG_PATH"
	DefaultMaxStack = uint32(64)
	schemaURL       = "catalog.schema.json"
)

var ErrDuplicateItem = errors.New("duplicate item definition")

//go:embed schema.json
var schemaJSON []byte

//go:embed items.yaml
var defaultItems []byte

type Definition struct {
	Name     string `yaml:"name"`
	MaxStack uint32 `yaml:"max_stack"`
}

type document struct {
	DefaultMaxStack uint32       `yaml:"default_max_stack"`
	Items           []Definition `yaml:"items"`
}

type Model struct {
	defaultMaxStack uint32
	definitions     map[string]Definition
}

func (m Model) Definition(name string) (Definition, bool) {
	d, ok := m.definitions[name]
	return d, ok
}

// MaxStack returns the stack limit for an item type. Types missing from the
// catalog fall back to the catalog default.
func (m Model) MaxStack(name string) uint32 {
	if d, ok := m.definitions[name]; ok {
		return d.MaxStack
	}
	if m.defaultMaxStack == 0 {
		return DefaultMaxStack
	}
	return m.defaultMaxStack
}

func (m Model) Size() int {
	return len(m.definitions)
}

var defaultModel Model
var defaultOnce sync.Once

func Default() Model {
	defaultOnce.Do(func() {
		m, err := Parse(defaultItems)
		if err != nil {
			panic(fmt.Sprintf("embedded item catalog is invalid: %v", err))
		}
		defaultModel = m
	})
	return defaultModel
}

// Load reads the catalog named by ITEM_CATALOG_PATH, or the embedded default
// when the variable is unset.
func Load() (Model, error) {
	path, ok := os.LookupEnv(EnvPath)
	if !ok || path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Model{}, err
	}
	m, err := Parse(raw)
	if err != nil {
		return Model{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func Parse(raw []byte) (Model, error) {
	if err := validate(raw); err != nil {
		return Model{}, err
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Model{}, err
	}
	m := Model{
		defaultMaxStack: doc.DefaultMaxStack,
		definitions:     make(map[string]Definition, len(doc.Items)),
	}
	if m.defaultMaxStack == 0 {
		m.defaultMaxStack = DefaultMaxStack
	}
	for _, d := range doc.Items {
		if _, ok := m.definitions[d.Name]; ok {
			return Model{}, fmt.Errorf("item [%s]: %w", d.Name, ErrDuplicateItem)
		}
		m.definitions[d.Name] = d
	}
	return m, nil
}

func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	// The validator expects JSON-decoded values.
	js, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	if err = json.Unmarshal(js, &v); err != nil {
		return err
	}

	c := jsonschema.NewCompiler()
	if err = c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return err
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return err
	}
	return s.Validate(v)
}
