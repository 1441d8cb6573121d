package calculator

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Knetic/govaluate"
)

const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
)

var (
	ErrDivisionByZero   = errors.New("cannot divide by zero")
	ErrUnknownOperation = errors.New("invalid operation: use add, subtract, multiply or divide")
)

// Apply performs one arithmetic operation. Operation names are matched
// case-insensitively.
func Apply(op string, a, b float64) (float64, error) {
	switch strings.ToLower(op) {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, ErrUnknownOperation
	}
}

// Evaluate computes a free-form arithmetic expression. The result must be a
// finite number; division by zero inside an expression is reported as such.
func Evaluate(expr string) (float64, error) {
	parsed, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return 0, fmt.Errorf("invalid expression: %w", err)
	}
	value, err := parsed.Evaluate(nil)
	if err != nil {
		return 0, fmt.Errorf("evaluate expression: %w", err)
	}
	result, ok := value.(float64)
	if !ok {
		return 0, errors.New("expression did not evaluate to a number")
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, ErrDivisionByZero
	}
	return result, nil
}
