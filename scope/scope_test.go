package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nougo-lang/nougo/value"
)

func TestScope_LookUpWalksParentChain(t *testing.T) {
	root := NewRoot("root")
	root.Bind("x", &value.Int{I: 1})
	child := NewChild("child", root)

	v, ok := child.LookUp("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(*value.Int).I)

	_, ok = child.LookUp("missing")
	assert.False(t, ok)
}

func TestScope_BindAlwaysTargetsCurrentScope(t *testing.T) {
	root := NewRoot("root")
	root.Bind("x", &value.Int{I: 1})
	child := NewChild("child", root)
	child.Bind("x", &value.Int{I: 2})

	rv, _ := root.LookUp("x")
	cv, _ := child.LookUp("x")
	assert.Equal(t, int64(1), rv.(*value.Int).I)
	assert.Equal(t, int64(2), cv.(*value.Int).I)
}

func TestScope_AssignRewritesOwningScope(t *testing.T) {
	root := NewRoot("root")
	root.Bind("x", &value.Int{I: 1})
	child := NewChild("child", root)

	ok := child.Assign("x", &value.Int{I: 9})
	assert.True(t, ok)
	rv, _ := root.LookUp("x")
	assert.Equal(t, int64(9), rv.(*value.Int).I)
	_, ownChild := child.Bindings["x"]
	assert.False(t, ownChild, "Assign must not create a shadow binding in the child")
}

func TestScope_AssignUnboundNameFails(t *testing.T) {
	root := NewRoot("root")
	ok := root.Assign("never_bound", &value.Int{I: 1})
	assert.False(t, ok)
}

func TestScope_DeleteRemovesFromOwningScope(t *testing.T) {
	root := NewRoot("root")
	root.Bind("x", &value.Int{I: 1})
	child := NewChild("child", root)

	assert.True(t, child.Delete("x"))
	_, ok := root.LookUp("x")
	assert.False(t, ok)
	assert.False(t, child.Delete("x"))
}

func TestScope_ProtectedNamePropagatesFromRoot(t *testing.T) {
	root := NewRoot("root")
	root.Protect("True")
	child := NewChild("child", root)

	assert.True(t, child.IsProtected("True"))
	assert.False(t, child.IsProtected("x"))
}

func TestScope_OwnerFindsDeclaringFrame(t *testing.T) {
	root := NewRoot("root")
	root.Bind("x", &value.Int{I: 1})
	child := NewChild("child", root)
	grandchild := NewChild("grandchild", child)

	assert.Same(t, root, grandchild.Owner("x"))
	assert.Nil(t, grandchild.Owner("missing"))
}
