package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nougo-lang/nougo/value"
)

func TestRegisterBuiltin_IsRetrievableFromBuiltins(t *testing.T) {
	b := &value.Builtin{Name: "__test_builtin_registry__"}
	RegisterBuiltin(b)

	found := false
	for _, got := range Builtins() {
		if got.Name == b.Name {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRegisterModule_BuildsAFreshInstancePerImport(t *testing.T) {
	calls := 0
	RegisterModule("__test_module_registry__", func() *value.Module {
		calls++
		return &value.Module{Name: "__test_module_registry__", Exports: map[string]value.Value{}}
	})

	m1, ok := Module("__test_module_registry__")
	require.True(t, ok)
	m2, ok := Module("__test_module_registry__")
	require.True(t, ok)

	assert.Equal(t, 2, calls)
	assert.NotSame(t, m1, m2)
}

func TestModule_UnknownNameReportsNotFound(t *testing.T) {
	_, ok := Module("__definitely_not_registered__")
	assert.False(t, ok)
}

func TestModuleNames_IncludesEveryRegisteredModule(t *testing.T) {
	RegisterModule("__test_module_names_registry__", func() *value.Module {
		return &value.Module{Name: "__test_module_names_registry__"}
	})

	names := ModuleNames()
	found := false
	for _, n := range names {
		if n == "__test_module_names_registry__" {
			found = true
		}
	}
	assert.True(t, found)
}
