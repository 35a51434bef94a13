package assembler

import (
	"fmt"
)

// Env supplies what an expression needs to be resolved.
type Env interface {
	// Offset is the address of the instruction being processed.
	Offset() int
	// Label returns the offset bound to a label.
	Label(name string) (int, bool)
}

// Expr is an operand expression. Nodes other than Literal are evaluated
// lazily because they depend on label bindings or the current position.
type Expr interface {
	Eval(env Env) (Integer, error)
	String() string
}

// Literal is a constant.
type Literal struct {
	Value Integer
}

// Current is the address of the instruction being assembled, written '*'.
type Current struct{}

// LabelRef refers to a label by name.
type LabelRef struct {
	Name string
}

// BinaryOp is one of + - * /.
type BinaryOp struct {
	Op    byte
	Left  Expr
	Right Expr
}

// Negate is unary minus.
type Negate struct {
	X Expr
}

// LowByte is the #LO operator.
type LowByte struct {
	X Expr
}

// HighByte is the #HI operator.
type HighByte struct {
	X Expr
}

func (l Literal) Eval(Env) (Integer, error) { return l.Value, nil }
func (l Literal) String() string            { return l.Value.String() }

func (Current) Eval(env Env) (Integer, error) {
	if env == nil {
		return Integer{}, fmt.Errorf("%w '*'", ErrUndefinedLabel)
	}
	return addressValue(env.Offset()), nil
}

func (Current) String() string { return "*" }

func (r LabelRef) Eval(env Env) (Integer, error) {
	if env != nil {
		if v, ok := env.Label(r.Name); ok {
			return addressValue(v), nil
		}
	}
	return Integer{}, fmt.Errorf("%w '%s'", ErrUndefinedLabel, r.Name)
}

func (r LabelRef) String() string { return r.Name }

func (b BinaryOp) Eval(env Env) (Integer, error) {
	l, err := b.Left.Eval(env)
	if err != nil {
		return Integer{}, err
	}
	r, err := b.Right.Eval(env)
	if err != nil {
		return Integer{}, err
	}
	return applyOp(b.Op, l, r)
}

func (b BinaryOp) String() string {
	return fmt.Sprintf("[%s%c%s]", b.Left, b.Op, b.Right)
}

func (n Negate) Eval(env Env) (Integer, error) {
	v, err := n.X.Eval(env)
	if err != nil {
		return Integer{}, err
	}
	return v.Neg()
}

func (n Negate) String() string { return "-" + n.X.String() }

func (lo LowByte) Eval(env Env) (Integer, error) {
	v, err := lo.X.Eval(env)
	if err != nil {
		return Integer{}, err
	}
	return v.Low(), nil
}

func (lo LowByte) String() string { return "LO " + lo.X.String() }

func (hi HighByte) Eval(env Env) (Integer, error) {
	v, err := hi.X.Eval(env)
	if err != nil {
		return Integer{}, err
	}
	return v.High(), nil
}

func (hi HighByte) String() string { return "HI " + hi.X.String() }

func applyOp(op byte, l, r Integer) (Integer, error) {
	switch op {
	case '+':
		return l.Add(r)
	case '-':
		return l.Sub(r)
	case '*':
		return l.Mul(r)
	case '/':
		return l.Div(r)
	}
	return Integer{}, fmt.Errorf("unknown operator '%c'", op)
}

// Constructors used by the parser. They fold nodes whose operands are all
// literals. Division by zero and overflow are left unfolded and reported
// when assembled.

func newBinary(op byte, l, r Expr) Expr {
	ll, lok := l.(Literal)
	rl, rok := r.(Literal)
	if lok && rok {
		if v, err := applyOp(op, ll.Value, rl.Value); err == nil {
			return Literal{Value: v}
		}
	}
	return BinaryOp{Op: op, Left: l, Right: r}
}

func newNegate(x Expr) Expr {
	if l, ok := x.(Literal); ok {
		if v, err := l.Value.Neg(); err == nil {
			return Literal{Value: v}
		}
	}
	return Negate{X: x}
}

func newLowByte(x Expr) Expr {
	if l, ok := x.(Literal); ok {
		return Literal{Value: l.Value.Low()}
	}
	return LowByte{X: x}
}

func newHighByte(x Expr) Expr {
	if l, ok := x.(Literal); ok {
		return Literal{Value: l.Value.High()}
	}
	return HighByte{X: x}
}
