package calculator

import (
	"errors"
	"testing"
)

func TestApply(t *testing.T) {
	cases := []struct {
		op       string
		a, b     float64
		expected float64
	}{
		{"add", 5, 3, 8},
		{"add", -2.5, 2.5, 0},
		{"subtract", 5, 3, 2},
		{"subtract", 3, 5, -2},
		{"multiply", 4, 2.5, 10},
		{"multiply", -3, 3, -9},
		{"divide", 10, 4, 2.5},
		{"divide", -9, 3, -3},
		{"ADD", 1, 1, 2}, // operation names are case-insensitive
	}

	for _, tc := range cases {
		result, err := Apply(tc.op, tc.a, tc.b)
		if err != nil {
			t.Fatalf("Apply(%q, %v, %v) returned error: %v", tc.op, tc.a, tc.b, err)
		}
		if result != tc.expected {
			t.Fatalf("Apply(%q, %v, %v) = %v, want %v", tc.op, tc.a, tc.b, result, tc.expected)
		}
	}
}

func TestApplyDivisionByZero(t *testing.T) {
	_, err := Apply("divide", 10, 0)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestApplyUnknownOperation(t *testing.T) {
	for _, op := range []string{"", "modulo", "pow", "add "} {
		_, err := Apply(op, 1, 2)
		if !errors.Is(err, ErrUnknownOperation) {
			t.Fatalf("Apply(%q): expected ErrUnknownOperation, got %v", op, err)
		}
	}
}

func TestEvaluate(t *testing.T) {
	result, err := Evaluate("2 + 3 * 4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 14 {
		t.Fatalf("expected 14, got %v", result)
	}
}

func TestEvaluateInvalidExpression(t *testing.T) {
	if _, err := Evaluate("2 ++ * 3"); err == nil {
		t.Fatal("expected error for invalid expression, got nil")
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	_, err := Evaluate("1 / 0")
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestEvaluateNonNumericResult(t *testing.T) {
	if _, err := Evaluate("1 > 0"); err == nil {
		t.Fatal("expected error for boolean result, got nil")
	}
}
