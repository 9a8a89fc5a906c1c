// Package arith parses and evaluates arithmetic expressions over
// float64 with the usual precedence: * and / bind tighter than + and -,
// and operators of equal precedence associate to the left.
package arith

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dhamidi/gobble/parse"
	"github.com/dhamidi/gobble/parse/common"
)

// ErrDivisionByZero is returned by Eval when a divisor evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// Expr is a node of the expression tree: Num, Paren or BinOp.
type Expr interface {
	fmt.Stringer
	isExpr()
}

type Num float64

type Paren struct {
	X Expr
}

type BinOp struct {
	Op   rune
	L, R Expr
}

func (Num) isExpr()   {}
func (Paren) isExpr() {}
func (BinOp) isExpr() {}

func (n Num) String() string   { return strconv.FormatFloat(float64(n), 'g', -1, 64) }
func (p Paren) String() string { return "(" + p.X.String() + ")" }
func (b BinOp) String() string { return b.L.String() + " " + string(b.Op) + " " + b.R.String() }

type opTail = []parse.Tuple2[rune, Expr]

func fold(t parse.Tuple2[Expr, opTail]) Expr {
	x := t.A
	for _, op := range t.B {
		x = BinOp{Op: op.A, L: x, R: op.B}
	}
	return x
}

func grammar() parse.Parser[Expr] {
	var expr parse.Parser[Expr]
	ref := parse.Lazy("expression", func() parse.Parser[Expr] { return expr })

	number := parse.Named("number", parse.Or(
		common.Float,
		parse.Map(common.Int, func(n int64) float64 { return float64(n) }),
	))
	atom := parse.Spaced(parse.Or(
		parse.Map(number, func(f float64) Expr { return Num(f) }),
		parse.Map(parse.Middle(parse.Char('('), ref, parse.Brk(parse.Char(')'))), func(x Expr) Expr { return Paren{X: x} }),
	))

	level := func(operand parse.Parser[Expr], ops string) parse.Parser[Expr] {
		op := parse.Spaced(parse.In(ops).One())
		return parse.Map(parse.Seq2(operand, parse.Star(parse.Seq2(op, operand))), fold)
	}

	expr = level(level(atom, "*/"), "+-")
	return expr
}

var expression = parse.Complete(grammar())

// Parse parses src as a single expression.
func Parse(src string) (Expr, error) {
	return parse.Run(expression, src)
}

// Eval computes the value of e.
func Eval(e Expr) (float64, error) {
	switch e := e.(type) {
	case Num:
		return float64(e), nil
	case Paren:
		return Eval(e.X)
	case BinOp:
		l, err := Eval(e.L)
		if err != nil {
			return 0, err
		}
		r, err := Eval(e.R)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			if r == 0 {
				return 0, fmt.Errorf("evaluate %s: %w", e, ErrDivisionByZero)
			}
			return l / r, nil
		}
		return 0, fmt.Errorf("unknown operator %q", e.Op)
	}
	return 0, fmt.Errorf("unknown expression %T", e)
}
