/*
File   : nougo/lexer/lexer_operators.go
Package: lexer

readOperator takes the longest matching prefix from the closed
operator set, e.g. `!>>` over `!>`, `>>=` over `>>`. Each case below
is ordered longest-candidate-first.
*/
package lexer

import (
	"github.com/nougo-lang/nougo/position"
	"github.com/nougo-lang/nougo/token"
)

func (l *Lexer) emit(start position.Position, kind token.Kind, n int) token.Token {
	lexeme := l.text[start.Offset : start.Offset+n]
	for i := 0; i < n; i++ {
		l.advance()
	}
	return token.New(kind, lexeme, position.Range{Start: start, End: l.pos()})
}

func (l *Lexer) readOperator(start position.Position) token.Token {
	c := l.current()
	switch c {
	case '+':
		if l.peek() == '=' {
			return l.emit(start, token.PLUSEQ, 2)
		}
		return l.emit(start, token.PLUS, 1)

	case '-':
		if l.peek() == '=' {
			return l.emit(start, token.MINUSEQ, 2)
		}
		if l.peek() == '>' {
			return l.emit(start, token.ARROW, 2)
		}
		return l.emit(start, token.MINUS, 1)

	case '*':
		if l.peek() == '=' {
			return l.emit(start, token.MULTEQ, 2)
		}
		return l.emit(start, token.MUL, 1)

	case '/':
		if l.peek() == '/' {
			if l.peekAt(2) == '=' {
				return l.emit(start, token.FLOORDIVEQ, 3)
			}
			return l.emit(start, token.FLOORDIV, 2)
		}
		if l.peek() == '=' {
			return l.emit(start, token.DIVEQ, 2)
		}
		return l.emit(start, token.DIV, 1)

	case '%':
		if l.peek() == '=' {
			return l.emit(start, token.PERCEQ, 2)
		}
		return l.emit(start, token.PERC, 1)

	case '^':
		if l.peek() == '^' {
			if l.peekAt(2) == '^' && l.peekAt(3) == '=' {
				return l.emit(start, token.XOREQ, 4)
			}
			if l.peekAt(2) == '=' {
				return l.emit(start, token.BITXOREQ, 3)
			}
			return l.emit(start, token.BITWISEXOR, 2)
		}
		if l.peek() == '=' {
			return l.emit(start, token.POWEQ, 2)
		}
		return l.emit(start, token.POW, 1)

	case '~':
		return l.emit(start, token.BITWISENOT, 1)

	case '=':
		if l.peek() == '=' && l.peekAt(2) == '=' {
			return l.emit(start, token.EEEQ, 3)
		}
		if l.peek() == '=' {
			return l.emit(start, token.EE, 2)
		}
		return l.emit(start, token.EQ, 1)

	case '!':
		if l.peek() == '>' && l.peekAt(2) == '>' {
			return l.emit(start, token.TO_AND_OVERWRITE, 3)
		}
		if l.peek() == '=' {
			return l.emit(start, token.NE, 2)
		}
		l.errorf(start, "unexpected character '!'")
		return l.emit(start, token.INVALID, 1)

	case '<':
		if l.peek() == '=' && l.peekAt(2) == '=' {
			return l.emit(start, token.LTEEQ, 3)
		}
		if l.peek() == '=' {
			return l.emit(start, token.LTE, 2)
		}
		if l.peek() == '<' && l.peekAt(2) == '=' {
			return l.emit(start, token.LTEQ, 3)
		}
		return l.emit(start, token.LT, 1)

	case '>':
		if l.peek() == '=' && l.peekAt(2) == '=' {
			return l.emit(start, token.GTEEQ, 3)
		}
		if l.peek() == '=' {
			return l.emit(start, token.GTE, 2)
		}
		if l.peek() == '>' && l.peekAt(2) == '=' {
			return l.emit(start, token.GTEQ, 3)
		}
		if l.peek() == '>' {
			return l.emit(start, token.TO, 2)
		}
		return l.emit(start, token.GT, 1)

	case '|':
		if l.peek() == '|' && l.peekAt(2) == '=' {
			return l.emit(start, token.OREQ, 3)
		}
		if l.peek() == '=' {
			return l.emit(start, token.BITOREQ, 2)
		}
		return l.emit(start, token.BITWISEOR, 1)

	case '&':
		if l.peek() == '&' && l.peekAt(2) == '=' {
			return l.emit(start, token.ANDEQ, 3)
		}
		if l.peek() == '=' {
			return l.emit(start, token.BITANDEQ, 2)
		}
		return l.emit(start, token.BITWISEAND, 1)

	case '(':
		return l.emit(start, token.LPAREN, 1)
	case ')':
		return l.emit(start, token.RPAREN, 1)
	case '[':
		return l.emit(start, token.LSQUARE, 1)
	case ']':
		return l.emit(start, token.RSQUARE, 1)
	case ',':
		return l.emit(start, token.COMMA, 1)
	case '?':
		return l.emit(start, token.INTERROGATIVE_PNT, 1)
	case '$':
		return l.emit(start, token.DOLLAR, 1)
	}

	l.errorf(start, "unexpected character %q", c)
	return l.emit(start, token.INVALID, 1)
}
