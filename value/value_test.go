package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_StringVsInspectDiffer(t *testing.T) {
	s := &String{S: "hi"}
	assert.Equal(t, "hi", s.String())
	assert.Equal(t, "\"hi\"", s.Inspect())
}

func TestValue_ListStringNestsElementForm(t *testing.T) {
	l := NewList(&String{S: "a"}, &Int{I: 1})
	assert.Equal(t, "[a, 1]", l.String())
	assert.Equal(t, "[\"a\", 1]", l.Inspect())
}

func TestValue_NoneValueIsSharedSingleton(t *testing.T) {
	assert.Same(t, NoneValue, NoneValue)
	assert.Equal(t, "None", NoneValue.String())
}

func TestValue_FloatFormattingRoundTrips(t *testing.T) {
	f := &Float{F: 3.14159}
	assert.Equal(t, "3.14159", f.String())
}

func TestValue_TypeTags(t *testing.T) {
	assert.Equal(t, IntType, (&Int{}).Type())
	assert.Equal(t, FloatType, (&Float{}).Type())
	assert.Equal(t, StringType, (&String{}).Type())
	assert.Equal(t, ListType, (&List{}).Type())
	assert.Equal(t, NoneType, NoneValue.Type())
	assert.Equal(t, FuncType, (&Function{}).Type())
	assert.Equal(t, BuiltinType, (&Builtin{}).Type())
	assert.Equal(t, ClassType, (&Class{}).Type())
	assert.Equal(t, InstanceType, NewInstance(&Class{Name: "C"}).Type())
	assert.Equal(t, ModuleType, (&Module{}).Type())
}

func TestInstance_GetAttrFallsBackToClassMethodAndBindsThis(t *testing.T) {
	method := &Function{Name: "speak"}
	class := &Class{Name: "Animal", Members: map[string]Value{"speak": method}}
	inst := NewInstance(class)

	got, ok := inst.GetAttr("speak")
	require := assert.New(t)
	require.True(ok)
	fn, ok := got.(*Function)
	require.True(ok)
	require.Same(inst, fn.BoundThis)
	require.Nil(method.BoundThis, "the stored class method itself must stay unbound")
}

func TestInstance_SetAttrShadowsClassMethodWithoutMutatingIt(t *testing.T) {
	method := &Function{Name: "count"}
	class := &Class{Name: "C", Members: map[string]Value{"count": method}}
	inst := NewInstance(class)

	inst.SetAttr("count", &Int{I: 5})
	got, ok := inst.GetAttr("count")
	assert.True(t, ok)
	assert.Equal(t, int64(5), got.(*Int).I)
}

func TestClass_MethodWalksParentChain(t *testing.T) {
	base := &Class{Name: "Animal", Members: map[string]Value{"speak": &Function{Name: "speak"}}}
	derived := &Class{Name: "Dog", Parent: base, Members: map[string]Value{}}

	_, ok := derived.Method("speak")
	assert.True(t, ok)
	_, ok = derived.Method("missing")
	assert.False(t, ok)
}

func TestModule_GetAttr(t *testing.T) {
	m := &Module{Name: "math", Exports: map[string]Value{"pi": &Float{F: 3.14}}}
	v, ok := m.GetAttr("pi")
	assert.True(t, ok)
	assert.Equal(t, 3.14, v.(*Float).F)
	_, ok = m.GetAttr("missing")
	assert.False(t, ok)
}
