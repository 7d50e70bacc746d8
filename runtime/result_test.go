package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nougo-lang/nougo/value"
)

func TestRTR_OkCarriesNoSignal(t *testing.T) {
	r := Ok(&value.Int{I: 1})
	assert.False(t, r.IsError())
	assert.False(t, r.ShouldUnwind())
}

func TestRTR_FailIsErrorAndUnwinds(t *testing.T) {
	r := Fail(errors.New("boom"))
	assert.True(t, r.IsError())
	assert.True(t, r.ShouldUnwind())
}

func TestRTR_ReturnWithUnwindsButIsNotAnError(t *testing.T) {
	r := ReturnWith(&value.Int{I: 42})
	assert.False(t, r.IsError())
	assert.True(t, r.ShouldUnwind())
	assert.True(t, r.ShouldReturn)
}

func TestRTR_BreakAndContinueYieldNoneAndUnwind(t *testing.T) {
	b := BreakSignal()
	assert.Same(t, value.NoneValue, b.Value)
	assert.True(t, b.ShouldUnwind())

	c := ContinueSignal()
	assert.Same(t, value.NoneValue, c.Value)
	assert.True(t, c.ShouldUnwind())
}

func TestRTR_ClearLoopSignalDropsBreakContinueOnly(t *testing.T) {
	r := BreakSignal()
	cleared := r.ClearLoopSignal()
	assert.False(t, cleared.ShouldBreak)
	assert.False(t, cleared.ShouldUnwind())
	assert.True(t, r.ShouldBreak, "the original RTR must be untouched")
}

func TestRTR_NilReceiverIsSafe(t *testing.T) {
	var r *RTR
	assert.False(t, r.IsError())
	assert.False(t, r.ShouldUnwind())
}
