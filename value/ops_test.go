/*
File   : nougo/value/ops_test.go
Package: value

Table-driven operator tests over the BinOp/Compare/UnaryOp/Equal/
Truthy free functions (no evaluator needed to exercise operator laws
directly).
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinOp_IntArithmeticStaysInt(t *testing.T) {
	v, err := BinOp("+", &Int{I: 2}, &Int{I: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.(*Int).I)
}

func TestBinOp_MixedOperandsPromoteToFloat(t *testing.T) {
	v, err := BinOp("/", &Int{I: 1}, &Float{F: 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v.(*Float).F, 1e-9)
}

func TestBinOp_IntDivisionStaysIntWhenExact(t *testing.T) {
	v, err := BinOp("/", &Int{I: 15}, &Int{I: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.(*Int).I)

	v, err = BinOp("/", &Int{I: 1}, &Int{I: 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v.(*Float).F, 1e-9)
}

func TestBinOp_DivisionByZeroIsArithmeticError(t *testing.T) {
	_, err := BinOp("/", &Int{I: 1}, &Int{I: 0})
	require.Error(t, err)
	opErr, ok := err.(*OpError)
	require.True(t, ok)
	assert.True(t, opErr.Arithmetic)
}

func TestBinOp_FloorDivRoundsTowardNegativeInfinity(t *testing.T) {
	v, err := BinOp("//", &Int{I: -7}, &Int{I: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(-4), v.(*Int).I)
}

func TestBinOp_ModFollowsDivisorSign(t *testing.T) {
	v, err := BinOp("%", &Int{I: -7}, &Int{I: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*Int).I)
}

func TestBinOp_PowNegativeBaseNegativeExponentYieldsFloat(t *testing.T) {
	v, err := BinOp("^", &Int{I: -2}, &Int{I: -1})
	require.NoError(t, err)
	_, ok := v.(*Float)
	assert.True(t, ok)
}

func TestBinOp_StringConcat(t *testing.T) {
	v, err := BinOp("+", &String{S: "ab"}, &String{S: "cd"})
	require.NoError(t, err)
	assert.Equal(t, "abcd", v.(*String).S)
}

func TestBinOp_StringPlusNonStringIsTypeError(t *testing.T) {
	_, err := BinOp("+", &Int{I: 1}, &String{S: "x"})
	require.Error(t, err)
	opErr, ok := err.(*OpError)
	require.True(t, ok)
	assert.False(t, opErr.Arithmetic)
}

func TestBinOp_StringRepeat(t *testing.T) {
	v, err := BinOp("*", &String{S: "ab"}, &Int{I: 3})
	require.NoError(t, err)
	assert.Equal(t, "ababab", v.(*String).S)

	v, err = BinOp("*", &Int{I: 2}, &String{S: "xy"})
	require.NoError(t, err)
	assert.Equal(t, "xyxy", v.(*String).S)
}

func TestBinOp_ListConcatAndRepeat(t *testing.T) {
	v, err := BinOp("+", NewList(&Int{I: 1}), NewList(&Int{I: 2}))
	require.NoError(t, err)
	assert.Len(t, v.(*List).Elems, 2)

	v, err = BinOp("*", NewList(&Int{I: 1}, &Int{I: 2}), &Int{I: 2})
	require.NoError(t, err)
	assert.Len(t, v.(*List).Elems, 4)
}

func TestBinOp_BitwiseRequiresInts(t *testing.T) {
	_, err := BinOp("|", &Float{F: 1}, &Int{I: 2})
	require.Error(t, err)

	v, err := BinOp("^^", &Int{I: 0b1010}, &Int{I: 0b0110})
	require.NoError(t, err)
	assert.Equal(t, int64(0b1100), v.(*Int).I)
}

func TestCompare_EqualityAcrossIntFloat(t *testing.T) {
	v, err := Compare("==", &Int{I: 2}, &Float{F: 2.0})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*Int).I)
}

func TestCompare_StringOrdering(t *testing.T) {
	v, err := Compare("<", &String{S: "ab"}, &String{S: "ac"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*Int).I)
}

func TestCompare_IncompatibleTypesIsError(t *testing.T) {
	_, err := Compare("<", &String{S: "a"}, &Int{I: 1})
	require.Error(t, err)
}

func TestEqual_ListsCompareElementwise(t *testing.T) {
	a := NewList(&Int{I: 1}, &String{S: "x"})
	b := NewList(&Int{I: 1}, &String{S: "x"})
	c := NewList(&Int{I: 1}, &String{S: "y"})
	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestUnaryOp(t *testing.T) {
	v, err := UnaryOp("-", &Int{I: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(-5), v.(*Int).I)

	v, err = UnaryOp("not", &Int{I: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*Int).I)

	v, err = UnaryOp("~", &Int{I: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v.(*Int).I)
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(&Int{I: 0}))
	assert.True(t, Truthy(&Int{I: 1}))
	assert.False(t, Truthy(&String{S: ""}))
	assert.True(t, Truthy(NewList(&Int{I: 1})))
	assert.False(t, Truthy(NewList()))
	assert.False(t, Truthy(NoneValue))
	assert.True(t, Truthy(&Function{Name: "f"}))
}
