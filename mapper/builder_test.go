package mapper_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgr/xidi/controller"
	"github.com/samuelgr/xidi/forcefeedback"
	"github.com/samuelgr/xidi/mapper"
)

func TestBuilderEndToEnd(t *testing.T) {
	registry := mapper.NewRegistry()
	builder := mapper.NewBuilder(registry)

	require.NoError(t, builder.CreateBlueprint("TwoElements"))
	require.NoError(t, builder.SetElementMapper("TwoElements", "TriggerLT",
		mapper.NewButtonMapper(controller.Button(14))))
	require.NoError(t, builder.SetElementMapper("TwoElements", "ButtonA",
		mapper.NewButtonMapper(controller.Button(14))))

	m, err := builder.Build("TwoElements")
	require.NoError(t, err)
	require.NotNil(t, m)

	elements := m.ElementMap()
	populated := 0
	for slot := 0; slot < mapper.SlotCount; slot++ {
		if elements[slot] != nil {
			populated++
		}
	}
	assert.Equal(t, 2, populated)
	assert.NotNil(t, elements[mapper.SlotTriggerLT])
	assert.NotNil(t, elements[mapper.SlotButtonA])

	assert.Equal(t, 15, m.Capabilities().ButtonCount(),
		"capabilities count up to the highest targeted button")

	registered, ok := registry.Lookup("TwoElements")
	assert.True(t, ok)
	assert.Same(t, m, registered)
}

func TestBuilderTemplateChain(t *testing.T) {
	registry := mapper.NewRegistry()
	builder := mapper.NewBuilder(registry)

	// A <- B <- C <- D <- E <- F <- G, each adding one button override.
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, name := range names {
		require.NoError(t, builder.CreateBlueprint(name))
		if i > 0 {
			require.NoError(t, builder.SetTemplate(name, names[i-1]))
		}
		element := fmt.Sprintf("Button%s", []string{"A", "B", "X", "Y", "LB", "RB", "Back"}[i])
		require.NoError(t, builder.SetElementMapper(name, element,
			mapper.NewButtonMapper(controller.Button(i))))
	}

	m, err := builder.Build("G")
	require.NoError(t, err)

	elements := m.ElementMap()
	populated := 0
	for slot := 0; slot < mapper.SlotCount; slot++ {
		if elements[slot] != nil {
			populated++
		}
	}
	assert.Equal(t, 7, populated, "seven-deep chain accumulates every ancestor's overrides")
}

func TestBuilderTemplateCycle(t *testing.T) {
	registry := mapper.NewRegistry()
	builder := mapper.NewBuilder(registry)

	names := []string{"A", "B", "C"}
	for i, name := range names {
		require.NoError(t, builder.CreateBlueprint(name))
		require.NoError(t, builder.SetTemplate(name, names[(i+len(names)-1)%len(names)]))
	}

	for _, name := range names {
		m, err := builder.Build(name)
		assert.Error(t, err, "every node in the cycle fails to build")
		assert.Nil(t, m)
		_, registered := registry.Lookup(name)
		assert.False(t, registered, "nothing is registered on failure")
	}
}

func TestBuilderSelfReference(t *testing.T) {
	builder := mapper.NewBuilder(mapper.NewRegistry())
	require.NoError(t, builder.CreateBlueprint("Selfish"))
	require.NoError(t, builder.SetTemplate("Selfish", "Selfish"))

	_, err := builder.Build("Selfish")
	assert.Error(t, err)
}

func TestBuilderUnknownTemplate(t *testing.T) {
	builder := mapper.NewBuilder(mapper.NewRegistry())
	require.NoError(t, builder.CreateBlueprint("Orphan"))
	require.NoError(t, builder.SetTemplate("Orphan", "DoesNotExist"))

	_, err := builder.Build("Orphan")
	assert.Error(t, err)
}

func TestBuilderBuiltMapperAsTemplate(t *testing.T) {
	registry := mapper.NewRegistry()
	builder := mapper.NewBuilder(registry)

	require.NoError(t, builder.CreateBlueprint("Base"))
	require.NoError(t, builder.SetElementMapper("Base", "ButtonA",
		mapper.NewButtonMapper(controller.Button(0))))
	_, err := builder.Build("Base")
	require.NoError(t, err)

	require.NoError(t, builder.CreateBlueprint("Derived"))
	require.NoError(t, builder.SetTemplate("Derived", "Base"))
	require.NoError(t, builder.SetElementMapper("Derived", "ButtonB",
		mapper.NewButtonMapper(controller.Button(1))))

	m, err := builder.Build("Derived")
	require.NoError(t, err)
	assert.NotNil(t, m.ElementMap()[mapper.SlotButtonA], "inherited from the built mapper")
	assert.NotNil(t, m.ElementMap()[mapper.SlotButtonB])
}

func TestBuilderExplicitClearMasksTemplate(t *testing.T) {
	registry := mapper.NewRegistry()
	builder := mapper.NewBuilder(registry)

	require.NoError(t, builder.CreateBlueprint("Full"))
	require.NoError(t, builder.SetElementMapper("Full", "ButtonA",
		mapper.NewButtonMapper(controller.Button(0))))
	require.NoError(t, builder.SetElementMapper("Full", "ButtonB",
		mapper.NewButtonMapper(controller.Button(1))))

	require.NoError(t, builder.CreateBlueprint("Trimmed"))
	require.NoError(t, builder.SetTemplate("Trimmed", "Full"))
	require.NoError(t, builder.ClearElementMapper("Trimmed", "ButtonA"))

	m, err := builder.Build("Trimmed")
	require.NoError(t, err)
	assert.Nil(t, m.ElementMap()[mapper.SlotButtonA], "explicitly cleared")
	assert.NotNil(t, m.ElementMap()[mapper.SlotButtonB], "inherited")
}

func TestBuilderInvalidatedBlueprint(t *testing.T) {
	registry := mapper.NewRegistry()
	builder := mapper.NewBuilder(registry)

	require.NoError(t, builder.CreateBlueprint("Broken"))
	err := builder.SetElementMapperFromString("Broken", "ButtonA", "Button(99)")
	require.Error(t, err)

	_, err = builder.Build("Broken")
	assert.Error(t, err, "a failed override invalidates the blueprint")

	// Invalidation also poisons anything templated on it.
	require.NoError(t, builder.CreateBlueprint("Child"))
	require.NoError(t, builder.SetTemplate("Child", "Broken"))
	_, err = builder.Build("Child")
	assert.Error(t, err)
}

func TestBuilderNameCollisions(t *testing.T) {
	registry := mapper.NewRegistry()
	builder := mapper.NewBuilder(registry)

	require.NoError(t, builder.CreateBlueprint("Dup"))
	assert.Error(t, builder.CreateBlueprint("Dup"), "duplicate blueprint name")

	_, err := builder.Build("Dup")
	require.NoError(t, err)
	assert.Error(t, builder.CreateBlueprint("Dup"),
		"name collides with the registered mapper after build")
}

func TestBuilderBlueprintConsumedByBuild(t *testing.T) {
	builder := mapper.NewBuilder(mapper.NewRegistry())
	require.NoError(t, builder.CreateBlueprint("Once"))

	_, err := builder.Build("Once")
	require.NoError(t, err)

	_, err = builder.Build("Once")
	assert.Error(t, err, "a blueprint cannot be built twice")
}

func TestBuilderActuatorMerge(t *testing.T) {
	registry := mapper.NewRegistry()
	builder := mapper.NewBuilder(registry)

	require.NoError(t, builder.CreateBlueprint("Plain"))
	m, err := builder.Build("Plain")
	require.NoError(t, err)
	assert.Equal(t, forcefeedback.DefaultActuatorMap(), m.ActuatorMap(),
		"default actuator map when nothing specifies one")

	require.NoError(t, builder.CreateBlueprint("BaseFF"))
	require.NoError(t, builder.SetActuatorFromString("BaseFF", "LeftMotor", "MagnitudeProjection(X, Y)"))

	require.NoError(t, builder.CreateBlueprint("DerivedFF"))
	require.NoError(t, builder.SetTemplate("DerivedFF", "BaseFF"))
	require.NoError(t, builder.SetActuatorFromString("DerivedFF", "RightTrigger", "SingleAxis(RotY)"))

	m, err = builder.Build("DerivedFF")
	require.NoError(t, err)

	am := m.ActuatorMap()
	assert.Equal(t, forcefeedback.ActuatorModeMagnitudeProjection, am.LeftMotor.Mode,
		"inherited from the template")
	assert.True(t, am.RightTrigger.Present, "own override applies")
	assert.Equal(t, controller.AxisRotY, am.RightTrigger.Axis)
	assert.Equal(t, forcefeedback.DefaultActuatorMap().RightMotor, am.RightMotor,
		"unspecified slots fall back to the default")
}

func TestRegisterStandardMappers(t *testing.T) {
	registry := mapper.NewRegistry()
	require.NoError(t, mapper.RegisterStandardMappers(registry))

	assert.Equal(t, []string{"DigitalGamepad", "ExtendedGamepad", "StandardGamepad"},
		registry.Names())

	std, ok := registry.Lookup("StandardGamepad")
	require.True(t, ok)
	caps := std.Capabilities()
	assert.Equal(t, 10, caps.ButtonCount())
	assert.True(t, caps.HasPov())
	assert.True(t, caps.HasAxis(controller.AxisX))
	assert.True(t, caps.HasAxis(controller.AxisRotY))

	ext, ok := registry.Lookup("ExtendedGamepad")
	require.True(t, ok)
	assert.Equal(t, 12, ext.Capabilities().ButtonCount())
	assert.False(t, ext.Capabilities().HasAxis(controller.AxisRotX),
		"trigger axes replaced by buttons")

	dig, ok := registry.Lookup("DigitalGamepad")
	require.True(t, ok)
	_, isDigital := dig.ElementMap()[mapper.SlotStickLeftX].(mapper.DigitalAxisMapper)
	assert.True(t, isDigital)
}
