package mapper

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samuelgr/xidi/forcefeedback"
)

// blueprint is a mutable, named mapper definition under construction. An
// element override is either a mapper (set) or nil (explicitly cleared);
// slots absent from the map inherit from the template.
type blueprint struct {
	name      string
	template  string
	elements  map[int]ElementMapper
	actuators map[int]forcefeedback.Actuator
	invalid   bool
}

// Builder accumulates named blueprint definitions, resolves their template
// chains, and registers the finished mappers it builds. Blueprints and
// finished mappers share one namespace.
type Builder struct {
	mu         sync.Mutex
	registry   *Registry
	blueprints map[string]*blueprint
}

// NewBuilder creates a builder that registers built mappers into registry.
func NewBuilder(registry *Registry) *Builder {
	return &Builder{
		registry:   registry,
		blueprints: make(map[string]*blueprint),
	}
}

// CreateBlueprint starts a new empty blueprint. The name must not collide
// with an existing blueprint or an already-registered mapper.
func (b *Builder) CreateBlueprint(name string) error {
	if name == "" {
		return fmt.Errorf("blueprint name must not be empty")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.blueprints[name]; exists {
		return fmt.Errorf("blueprint %q already exists", name)
	}
	if _, exists := b.registry.Lookup(name); exists {
		return fmt.Errorf("mapper %q is already registered", name)
	}

	b.blueprints[name] = &blueprint{
		name:      name,
		elements:  make(map[int]ElementMapper),
		actuators: make(map[int]forcefeedback.Actuator),
	}
	return nil
}

// BlueprintNames returns the names of all pending blueprints, sorted.
func (b *Builder) BlueprintNames() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	names := make([]string, 0, len(b.blueprints))
	for name := range b.blueprints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetTemplate names the template this blueprint inherits from. The template
// is resolved at build time, so it may refer to a blueprint or mapper that
// does not exist yet.
func (b *Builder) SetTemplate(blueprintName, templateName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	bp, err := b.pendingBlueprint(blueprintName)
	if err != nil {
		return err
	}
	bp.template = templateName
	return nil
}

// SetElementMapper overrides one element slot with a mapper tree.
func (b *Builder) SetElementMapper(blueprintName, elementName string, m ElementMapper) error {
	if m == nil {
		return fmt.Errorf("element mapper must not be nil; use ClearElementMapper to remove")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	bp, err := b.pendingBlueprint(blueprintName)
	if err != nil {
		return err
	}
	slot, ok := SlotByName(elementName)
	if !ok {
		return fmt.Errorf("unknown controller element %q", elementName)
	}
	bp.elements[slot] = m
	return nil
}

// SetElementMapperFromString parses an element mapper expression and applies
// it as an override. A parse failure invalidates the blueprint so that a
// later Build fails closed instead of producing a partially-applied mapper.
func (b *Builder) SetElementMapperFromString(blueprintName, elementName, expr string) error {
	m, parseErr := ElementMapperFromString(expr)

	b.mu.Lock()
	defer b.mu.Unlock()

	bp, err := b.pendingBlueprint(blueprintName)
	if err != nil {
		return err
	}
	slot, ok := SlotByName(elementName)
	if !ok {
		bp.invalid = true
		return fmt.Errorf("unknown controller element %q", elementName)
	}
	if parseErr != nil {
		bp.invalid = true
		return fmt.Errorf("element %s: %v", elementName, parseErr)
	}
	bp.elements[slot] = m
	return nil
}

// ClearElementMapper overrides one element slot to be explicitly empty,
// masking whatever the template assigns to it.
func (b *Builder) ClearElementMapper(blueprintName, elementName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	bp, err := b.pendingBlueprint(blueprintName)
	if err != nil {
		return err
	}
	slot, ok := SlotByName(elementName)
	if !ok {
		return fmt.Errorf("unknown controller element %q", elementName)
	}
	bp.elements[slot] = nil
	return nil
}

// SetActuator overrides one force feedback actuator slot.
func (b *Builder) SetActuator(blueprintName, actuatorName string, a forcefeedback.Actuator) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	bp, err := b.pendingBlueprint(blueprintName)
	if err != nil {
		return err
	}
	slot, ok := ActuatorSlotByName(actuatorName)
	if !ok {
		return fmt.Errorf("unknown actuator %q", actuatorName)
	}
	bp.actuators[slot] = a
	return nil
}

// SetActuatorFromString parses an actuator descriptor and applies it as an
// override. Like element overrides, a parse failure invalidates the
// blueprint.
func (b *Builder) SetActuatorFromString(blueprintName, actuatorName, expr string) error {
	a, parseErr := ActuatorFromString(expr)

	b.mu.Lock()
	defer b.mu.Unlock()

	bp, err := b.pendingBlueprint(blueprintName)
	if err != nil {
		return err
	}
	slot, ok := ActuatorSlotByName(actuatorName)
	if !ok {
		bp.invalid = true
		return fmt.Errorf("unknown actuator %q", actuatorName)
	}
	if parseErr != nil {
		bp.invalid = true
		return fmt.Errorf("actuator %s: %v", actuatorName, parseErr)
	}
	bp.actuators[slot] = a
	return nil
}

// InvalidateBlueprint marks a blueprint as unusable. Any build involving it,
// directly or through a template chain, fails.
func (b *Builder) InvalidateBlueprint(blueprintName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	bp, err := b.pendingBlueprint(blueprintName)
	if err != nil {
		return err
	}
	bp.invalid = true
	return nil
}

// Build resolves a blueprint's template chain, constructs the finished
// mapper, and registers it under the blueprint's name. On success the
// blueprint is consumed. On any failure nothing is registered.
func (b *Builder) Build(name string) (*Mapper, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.blueprints[name]; !exists {
		return nil, fmt.Errorf("no blueprint named %q", name)
	}

	elements, actuators, err := b.resolve(name, make(map[string]bool))
	if err != nil {
		return nil, err
	}

	actuatorMap := forcefeedback.DefaultActuatorMap()
	assign := []*forcefeedback.Actuator{
		&actuatorMap.LeftMotor,
		&actuatorMap.RightMotor,
		&actuatorMap.LeftTrigger,
		&actuatorMap.RightTrigger,
	}
	for slot, a := range actuators {
		if a != nil {
			*assign[slot] = *a
		}
	}

	m := NewMapper(name, elements, actuatorMap)
	if err := b.registry.Register(m); err != nil {
		return nil, err
	}
	delete(b.blueprints, name)
	return m, nil
}

// resolve walks the template chain for name, returning the merged element
// map and per-slot actuator overrides (nil where no link in the chain
// specified one). The seen set detects cycles, self-reference included.
func (b *Builder) resolve(name string, seen map[string]bool) (ElementMap, [ActuatorSlotCount]*forcefeedback.Actuator, error) {
	var elements ElementMap
	var actuators [ActuatorSlotCount]*forcefeedback.Actuator

	if seen[name] {
		return elements, actuators, fmt.Errorf("template cycle involving %q", name)
	}
	seen[name] = true

	bp, isBlueprint := b.blueprints[name]
	if !isBlueprint {
		// A template may also name an already-built mapper, whose element
		// and actuator maps are inherited wholesale.
		m, registered := b.registry.Lookup(name)
		if !registered {
			return elements, actuators, fmt.Errorf("template %q does not name a blueprint or a registered mapper", name)
		}
		elements = m.ElementMap().Clone()
		am := m.ActuatorMap()
		actuators[ActuatorSlotLeftMotor] = &am.LeftMotor
		actuators[ActuatorSlotRightMotor] = &am.RightMotor
		actuators[ActuatorSlotLeftTrigger] = &am.LeftTrigger
		actuators[ActuatorSlotRightTrigger] = &am.RightTrigger
		return elements, actuators, nil
	}

	if bp.invalid {
		return elements, actuators, fmt.Errorf("blueprint %q has been invalidated", name)
	}

	if bp.template != "" {
		var err error
		elements, actuators, err = b.resolve(bp.template, seen)
		if err != nil {
			return ElementMap{}, [ActuatorSlotCount]*forcefeedback.Actuator{}, err
		}
	}

	for slot, m := range bp.elements {
		if m == nil {
			elements[slot] = nil
		} else {
			elements[slot] = m.Clone()
		}
	}
	for slot, a := range bp.actuators {
		a := a
		actuators[slot] = &a
	}
	return elements, actuators, nil
}

// pendingBlueprint looks up a blueprint that has not yet been consumed by a
// successful build. Callers hold b.mu.
func (b *Builder) pendingBlueprint(name string) (*blueprint, error) {
	bp, ok := b.blueprints[name]
	if !ok {
		return nil, fmt.Errorf("no blueprint named %q", name)
	}
	return bp, nil
}
