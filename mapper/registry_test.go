package mapper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgr/xidi/controller"
	"github.com/samuelgr/xidi/forcefeedback"
	"github.com/samuelgr/xidi/mapper"
)

func namedTestMapper(name string) *mapper.Mapper {
	var elements mapper.ElementMap
	elements[mapper.SlotButtonA] = mapper.NewButtonMapper(controller.Button(0))
	return mapper.NewMapper(name, elements, forcefeedback.DefaultActuatorMap())
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := mapper.NewRegistry()

	require.NoError(t, registry.Register(namedTestMapper("Alpha")))
	require.NoError(t, registry.Register(namedTestMapper("Beta")))

	m, ok := registry.Lookup("Alpha")
	require.True(t, ok)
	assert.Equal(t, "Alpha", m.Name())
	assert.Equal(t, 1, m.Capabilities().ButtonCount())

	_, ok = registry.Lookup("Gamma")
	assert.False(t, ok)

	assert.Equal(t, []string{"Alpha", "Beta"}, registry.Names())
	assert.Equal(t, 2, registry.Len())
}

func TestRegistryRejectsInvalidRegistrations(t *testing.T) {
	registry := mapper.NewRegistry()

	assert.Error(t, registry.Register(nil))
	assert.Error(t, registry.Register(namedTestMapper("")))

	require.NoError(t, registry.Register(namedTestMapper("Alpha")))
	assert.Error(t, registry.Register(namedTestMapper("Alpha")),
		"duplicate names fail rather than replace")
	assert.Equal(t, 1, registry.Len())
}

func TestRegistryUnregisterFreesName(t *testing.T) {
	registry := mapper.NewRegistry()
	require.NoError(t, registry.Register(namedTestMapper("Alpha")))

	assert.True(t, registry.Unregister("Alpha"))
	_, ok := registry.Lookup("Alpha")
	assert.False(t, ok)
	assert.Equal(t, 0, registry.Len())

	assert.False(t, registry.Unregister("Alpha"), "second removal is a no-op")

	// The freed name is available for a fresh registration.
	require.NoError(t, registry.Register(namedTestMapper("Alpha")))
	assert.Equal(t, []string{"Alpha"}, registry.Names())
}
