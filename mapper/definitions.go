package mapper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// Definition is one named mapper blueprint as it appears in a definitions
// file. An element entry's value is an element mapper expression; an empty
// string explicitly clears the element, masking the template's assignment.
type Definition struct {
	Template  string            `json:"template,omitempty" yaml:"template,omitempty" toml:"template,omitempty"`
	Elements  map[string]string `json:"elements,omitempty" yaml:"elements,omitempty" toml:"elements,omitempty"`
	Actuators map[string]string `json:"actuators,omitempty" yaml:"actuators,omitempty" toml:"actuators,omitempty"`
}

// Definitions is the root of a mapper definitions file.
type Definitions struct {
	Mappers map[string]Definition `json:"mappers" yaml:"mappers" toml:"mappers"`
}

// LoadDefinitions reads a mapper definitions file, choosing the decoder by
// file extension: .toml, .yaml/.yml, or .json.
func LoadDefinitions(path string) (Definitions, error) {
	var defs Definitions

	data, err := os.ReadFile(path)
	if err != nil {
		return defs, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &defs)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &defs)
	case ".json":
		err = json.Unmarshal(data, &defs)
	default:
		return defs, fmt.Errorf("unsupported definitions file extension %q", filepath.Ext(path))
	}
	if err != nil {
		return defs, fmt.Errorf("parsing %s: %w", path, err)
	}
	return defs, nil
}

// Apply creates one blueprint per definition on the builder. The first
// failure aborts; the builder may then hold some fully-applied and one
// invalidated blueprint, none of which have been registered.
func (d Definitions) Apply(b *Builder) error {
	for _, name := range d.names() {
		def := d.Mappers[name]
		if err := b.CreateBlueprint(name); err != nil {
			return err
		}
		if def.Template != "" {
			if err := b.SetTemplate(name, def.Template); err != nil {
				return err
			}
		}
		for _, element := range sortedKeys(def.Elements) {
			expr := strings.TrimSpace(def.Elements[element])
			if expr == "" {
				if err := b.ClearElementMapper(name, element); err != nil {
					return fmt.Errorf("mapper %s: %w", name, err)
				}
				continue
			}
			if err := b.SetElementMapperFromString(name, element, expr); err != nil {
				return fmt.Errorf("mapper %s: %w", name, err)
			}
		}
		for _, actuator := range sortedKeys(def.Actuators) {
			if err := b.SetActuatorFromString(name, actuator, def.Actuators[actuator]); err != nil {
				return fmt.Errorf("mapper %s: %w", name, err)
			}
		}
	}
	return nil
}

// BuildAll builds every definition in name order. Blueprints whose template
// is another definition in the same file build correctly regardless of file
// order because unresolved templates are chased through the builder's
// blueprint set at build time.
func (d Definitions) BuildAll(b *Builder) ([]*Mapper, error) {
	built := make([]*Mapper, 0, len(d.Mappers))
	for _, name := range d.names() {
		m, err := b.Build(name)
		if err != nil {
			return nil, fmt.Errorf("building %s: %w", name, err)
		}
		built = append(built, m)
	}
	return built, nil
}

func (d Definitions) names() []string {
	return sortedKeys(d.Mappers)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
