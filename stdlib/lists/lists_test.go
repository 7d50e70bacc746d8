package lists

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nougo-lang/nougo/langerr"
	"github.com/nougo-lang/nougo/value"
)

func TestLists_PushAppendsAndMutatesInPlace(t *testing.T) {
	l := value.NewList(&value.Int{I: 1})
	v, err := pushImpl(l, &value.Int{I: 2})
	require.NoError(t, err)
	assert.Same(t, l, v)
	assert.Len(t, l.Elems, 2)
}

func TestLists_UnshiftPrepends(t *testing.T) {
	l := value.NewList(&value.Int{I: 2})
	_, err := unshiftImpl(l, &value.Int{I: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), l.Elems[0].(*value.Int).I)
}

func TestLists_PopRemovesLast(t *testing.T) {
	l := value.NewList(&value.Int{I: 1}, &value.Int{I: 2})
	v, err := popImpl(l)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.(*value.Int).I)
	assert.Len(t, l.Elems, 1)
}

func TestLists_PopEmptyIsIndexError(t *testing.T) {
	_, err := popImpl(value.NewList())
	require.Error(t, err)
	le, ok := err.(*langerr.Error)
	require.True(t, ok)
	assert.Equal(t, langerr.RTIndexError, le.Kind)
}

func TestLists_ShiftRemovesFirst(t *testing.T) {
	l := value.NewList(&value.Int{I: 1}, &value.Int{I: 2})
	v, err := shiftImpl(l)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*value.Int).I)
	assert.Len(t, l.Elems, 1)
}

func TestLists_ShiftEmptyIsError(t *testing.T) {
	_, err := shiftImpl(value.NewList())
	assert.Error(t, err)
}

func TestLists_SortAscendingInPlace(t *testing.T) {
	l := value.NewList(&value.Int{I: 3}, &value.Int{I: 1}, &value.Int{I: 2})
	_, err := sortImpl(l)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, []int64{l.Elems[0].(*value.Int).I, l.Elems[1].(*value.Int).I, l.Elems[2].(*value.Int).I})
}

func TestLists_SortIncomparableElementsIsError(t *testing.T) {
	l := value.NewList(&value.Int{I: 1}, &value.String{S: "a"})
	_, err := sortImpl(l)
	assert.Error(t, err)
}

func TestLists_Len(t *testing.T) {
	v, err := lenImpl(value.NewList(&value.Int{I: 1}, &value.Int{I: 2}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.(*value.Int).I)
}
