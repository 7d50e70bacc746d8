/*
File   : nougo/parser/parser_test.go
Package: parser

Parser tests asserting concrete *ast.Node shapes (operator, operand
counts, chain contents) rather than just "parses without error".
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nougo-lang/nougo/ast"
	"github.com/nougo-lang/nougo/position"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse(position.NewSource("<test>", src))
	require.Nil(t, err, "parse error for %q: %v", src, err)
	return prog
}

func parseErr(t *testing.T, src string) {
	t.Helper()
	_, err := Parse(position.NewSource("<test>", src))
	require.NotNil(t, err, "expected parse error for %q", src)
}

func firstStmt(t *testing.T, prog *ast.Program) ast.Stmt {
	t.Helper()
	require.NotEmpty(t, prog.Statements)
	return prog.Statements[0]
}

func TestParser_EmptyProgramYieldsEmptyNode(t *testing.T) {
	prog := parse(t, "")
	require.Len(t, prog.Statements, 1)
	_, ok := prog.Statements[0].(*ast.Empty)
	assert.True(t, ok)
}

func TestParser_IntAndFloatLiterals(t *testing.T) {
	prog := parse(t, "42")
	lit, ok := firstStmt(t, prog).(*ast.IntLit)
	require.True(t, ok)
	assert.Equal(t, int64(42), lit.Value)

	prog = parse(t, "3.5")
	flit, ok := firstStmt(t, prog).(*ast.FloatLit)
	require.True(t, ok)
	assert.InDelta(t, 3.5, flit.Value, 1e-9)
}

func TestParser_ArithmeticPrecedence(t *testing.T) {
	prog := parse(t, "1 + 2 * 3")
	bin, ok := firstStmt(t, prog).(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
	_, leftIsInt := bin.Left.(*ast.IntLit)
	assert.True(t, leftIsInt)
	rightBin, ok := bin.Right.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, "*", rightBin.Op)
}

func TestParser_ParensOverridePrecedence(t *testing.T) {
	prog := parse(t, "(1 + 2) * 3")
	bin, ok := firstStmt(t, prog).(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, "*", bin.Op)
	_, leftIsBin := bin.Left.(*ast.BinOp)
	assert.True(t, leftIsBin)
}

func TestParser_CompareChainCollectsAllOperands(t *testing.T) {
	prog := parse(t, "1 < 2 < 3")
	chain, ok := firstStmt(t, prog).(*ast.CompareChain)
	require.True(t, ok)
	require.Len(t, chain.Operands, 3)
	require.Len(t, chain.Ops, 2)
	assert.Equal(t, "<", chain.Ops[0])
	assert.Equal(t, "<", chain.Ops[1])
}

func TestParser_UnaryMinus(t *testing.T) {
	prog := parse(t, "-5")
	u, ok := firstStmt(t, prog).(*ast.UnaryOp)
	require.True(t, ok)
	assert.Equal(t, "-", u.Op)
}

func TestParser_ListLiteralWithSpread(t *testing.T) {
	prog := parse(t, "[0, *a, 3]")
	l, ok := firstStmt(t, prog).(*ast.ListLit)
	require.True(t, ok)
	require.Len(t, l.Elements, 3)
	assert.Equal(t, []bool{false, true, false}, l.Spreads)
}

func TestParser_VarAssignSimple(t *testing.T) {
	prog := parse(t, "var x = 5")
	va, ok := firstStmt(t, prog).(*ast.VarAssign)
	require.True(t, ok)
	require.Len(t, va.Targets, 1)
	assert.Equal(t, []string{"x"}, va.Targets[0])
	assert.Equal(t, "=", va.Op)
}

func TestParser_VarAssignRequiresVarKeywordForCompoundOps(t *testing.T) {
	parseErr(t, "x += 3")
}

func TestParser_VarAssignAttributeChain(t *testing.T) {
	prog := parse(t, "var this?count = 1")
	va, ok := firstStmt(t, prog).(*ast.VarAssign)
	require.True(t, ok)
	require.Len(t, va.Targets, 1)
	assert.Equal(t, []string{"this", "count"}, va.Targets[0])
}

func TestParser_MultiAssignParsesBothTargetsAndValues(t *testing.T) {
	prog := parse(t, "var a, b = 1, 2")
	va, ok := firstStmt(t, prog).(*ast.VarAssign)
	require.True(t, ok)
	require.Len(t, va.Targets, 2)
	assert.Equal(t, []string{"a"}, va.Targets[0])
	assert.Equal(t, []string{"b"}, va.Targets[1])
	require.Len(t, va.Values, 2)
}

func TestParser_VarAccessChain(t *testing.T) {
	prog := parse(t, "this?count")
	va, ok := firstStmt(t, prog).(*ast.VarAccess)
	require.True(t, ok)
	assert.Equal(t, []string{"this", "count"}, va.Chain)
}

func TestParser_IfElseSingleLine(t *testing.T) {
	prog := parse(t, "if 1 < 2 then 10 else 20 end")
	n, ok := firstStmt(t, prog).(*ast.If)
	require.True(t, ok)
	require.Len(t, n.Cases, 1)
	require.NotNil(t, n.Else)
}

func TestParser_IfElifElse(t *testing.T) {
	src := `
if 1 == 0 then
  10
elif 2 == 0 then
  20
else
  30
end
`
	prog := parse(t, src)
	n, ok := firstStmt(t, prog).(*ast.If)
	require.True(t, ok)
	require.Len(t, n.Cases, 2)
	require.NotNil(t, n.Else)
}

func TestParser_ForToStep(t *testing.T) {
	prog := parse(t, "for i = 1 to 4 then i end")
	f, ok := firstStmt(t, prog).(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "i", f.Name)
	assert.Nil(t, f.Step)

	prog = parse(t, "for i = 3 to 0 step -1 then i end")
	f, ok = firstStmt(t, prog).(*ast.For)
	require.True(t, ok)
	require.NotNil(t, f.Step)
}

func TestParser_ForIn(t *testing.T) {
	prog := parse(t, "for x in [1, 2] then x end")
	f, ok := firstStmt(t, prog).(*ast.ForIn)
	require.True(t, ok)
	assert.Equal(t, "x", f.Name)
}

func TestParser_WhileDoEnd(t *testing.T) {
	prog := parse(t, "while 1 < 2 do\n  break\nend")
	w, ok := firstStmt(t, prog).(*ast.While)
	require.True(t, ok)
	require.NotNil(t, w.Cond)
}

func TestParser_DoWhileLoop(t *testing.T) {
	prog := parse(t, "do\n  1\nloop while 1 < 2")
	dw, ok := firstStmt(t, prog).(*ast.DoWhile)
	require.True(t, ok)
	require.NotNil(t, dw.Cond)
}

func TestParser_FuncDefAutoReturn(t *testing.T) {
	prog := parse(t, "def greet(name?) -> name")
	fn, ok := firstStmt(t, prog).(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "greet", fn.Name)
	assert.Empty(t, fn.Params)
	assert.Equal(t, []string{"name"}, fn.OptionalParams)
	assert.True(t, fn.AutoReturn)
}

func TestParser_FuncDefBlockForm(t *testing.T) {
	src := `
def fact(n)
  if n < 2 then return 1 end
  return n * fact(n - 1)
end
`
	prog := parse(t, src)
	fn, ok := firstStmt(t, prog).(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, []string{"n"}, fn.Params)
	assert.False(t, fn.AutoReturn)
}

func TestParser_FuncDefArrowThenBlockForm(t *testing.T) {
	src := `
def fact(n) ->
  if n <= 1 then return 1
  return n * fact(n - 1)
end
`
	prog := parse(t, src)
	fn, ok := firstStmt(t, prog).(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, []string{"n"}, fn.Params)
	assert.False(t, fn.AutoReturn)
	block, ok := fn.Body.(*ast.Block)
	require.True(t, ok)
	assert.Len(t, block.Statements, 2)
}

func TestParser_ClassDefWithParent(t *testing.T) {
	src := `
class Animal
  def speak() -> "..."
end
class Dog -> Animal
end
`
	prog := parse(t, src)
	require.Len(t, prog.Statements, 2)
	base, ok := prog.Statements[0].(*ast.ClassDef)
	require.True(t, ok)
	assert.Equal(t, "Animal", base.Name)
	assert.Empty(t, base.Parent)

	derived, ok := prog.Statements[1].(*ast.ClassDef)
	require.True(t, ok)
	assert.Equal(t, "Dog", derived.Name)
	assert.Equal(t, "Animal", derived.Parent)
}

func TestParser_CallWithSpreadArg(t *testing.T) {
	prog := parse(t, "f(1, *xs, 2)")
	call, ok := firstStmt(t, prog).(*ast.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 3)
	assert.True(t, call.Args[1].Spread)
	assert.False(t, call.Args[0].Spread)
}

func TestParser_ImportWithAlias(t *testing.T) {
	prog := parse(t, "import math -> m")
	imp, ok := firstStmt(t, prog).(*ast.Import)
	require.True(t, ok)
	assert.Equal(t, []string{"math"}, imp.PathSegments)
	assert.Equal(t, "m", imp.Alias)
}

func TestParser_AssertWithMessage(t *testing.T) {
	prog := parse(t, `assert 1 == 2, "nope"`)
	a, ok := firstStmt(t, prog).(*ast.Assert)
	require.True(t, ok)
	require.NotNil(t, a.Msg)
}

func TestParser_WriteAppendVsOverwrite(t *testing.T) {
	prog := parse(t, `write "hi" >> "f.txt"`)
	w, ok := firstStmt(t, prog).(*ast.Write)
	require.True(t, ok)
	assert.Equal(t, ">>", w.ToOp)

	prog = parse(t, `write "hi" !>> "f.txt"`)
	w, ok = firstStmt(t, prog).(*ast.Write)
	require.True(t, ok)
	assert.Equal(t, "!>>", w.ToOp)
}

func TestParser_DollarPrint(t *testing.T) {
	prog := parse(t, "$foo")
	d, ok := firstStmt(t, prog).(*ast.DollarPrint)
	require.True(t, ok)
	assert.Equal(t, "foo", d.Identifier)
}

func TestParser_ScientificNotationBuildsNumE(t *testing.T) {
	prog := parse(t, "1e10")
	n, ok := firstStmt(t, prog).(*ast.NumE)
	require.True(t, ok)
	assert.Equal(t, int64(10), n.Exponent)
}

func TestParser_UnterminatedBlockIsError(t *testing.T) {
	parseErr(t, "if 1 < 2 then\n  10\n")
}

func TestParser_VarWithoutTargetNameIsError(t *testing.T) {
	parseErr(t, "var = 5")
}
