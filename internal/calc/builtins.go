// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calc

import (
	"fmt"
	"math"
	"sort"
)

// builtin describes a numeric function callable from expressions.
type builtin struct {
	minArgs int
	maxArgs int
	fn      func(args []float64) (float64, error)
}

func (b builtin) arity() string {
	switch {
	case b.minArgs == b.maxArgs && b.minArgs == 1:
		return "1 argument"
	case b.minArgs == b.maxArgs:
		return fmt.Sprintf("%d arguments", b.minArgs)
	default:
		return fmt.Sprintf("%d to %d arguments", b.minArgs, b.maxArgs)
	}
}

// builtinError carries the error kind out of a builtin without repeating it
// in the message.
type builtinError struct {
	kind error
	msg  string
}

func (e builtinError) Error() string { return e.msg }

func domainErr(format string, args ...interface{}) error {
	return builtinError{kind: ErrDomain, msg: fmt.Sprintf(format, args...)}
}

func kindOf(err error) error {
	if be, ok := err.(builtinError); ok {
		return be.kind
	}
	return ErrDomain
}

// constants are the named values an expression may reference.
var constants = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
}

var builtins = map[string]builtin{
	// Trigonometry.
	"sin":  {minArgs: 1, maxArgs: 1, fn: unary(math.Sin)},
	"cos":  {minArgs: 1, maxArgs: 1, fn: unary(math.Cos)},
	"tan":  {minArgs: 1, maxArgs: 1, fn: unary(math.Tan)},
	"asin": {minArgs: 1, maxArgs: 1, fn: bounded(math.Asin, -1, 1)},
	"acos": {minArgs: 1, maxArgs: 1, fn: bounded(math.Acos, -1, 1)},
	"atan": {minArgs: 1, maxArgs: 1, fn: unary(math.Atan)},
	"atan2": {minArgs: 2, maxArgs: 2, fn: func(args []float64) (float64, error) {
		return math.Atan2(args[0], args[1]), nil
	}},
	"degrees": {minArgs: 1, maxArgs: 1, fn: unary(func(x float64) float64 { return x * 180 / math.Pi })},
	"radians": {minArgs: 1, maxArgs: 1, fn: unary(func(x float64) float64 { return x * math.Pi / 180 })},

	// Hyperbolic.
	"sinh":  {minArgs: 1, maxArgs: 1, fn: unary(math.Sinh)},
	"cosh":  {minArgs: 1, maxArgs: 1, fn: unary(math.Cosh)},
	"tanh":  {minArgs: 1, maxArgs: 1, fn: unary(math.Tanh)},
	"asinh": {minArgs: 1, maxArgs: 1, fn: unary(math.Asinh)},
	"acosh": {minArgs: 1, maxArgs: 1, fn: bounded(math.Acosh, 1, math.Inf(1))},
	"atanh": {minArgs: 1, maxArgs: 1, fn: func(args []float64) (float64, error) {
		if args[0] <= -1 || args[0] >= 1 {
			return 0, domainErr("argument must be in (-1, 1)")
		}
		return math.Atanh(args[0]), nil
	}},

	// Exponentials and logs.
	"exp":   {minArgs: 1, maxArgs: 1, fn: unary(math.Exp)},
	"exp2":  {minArgs: 1, maxArgs: 1, fn: unary(math.Exp2)},
	"expm1": {minArgs: 1, maxArgs: 1, fn: unary(math.Expm1)},
	"ldexp": {minArgs: 2, maxArgs: 2, fn: func(args []float64) (float64, error) {
		if !isInteger(args[1]) {
			return 0, domainErr("exponent must be an integer")
		}
		return math.Ldexp(args[0], int(args[1])), nil
	}},
	"log":   {minArgs: 1, maxArgs: 2, fn: logN},
	"log2":  {minArgs: 1, maxArgs: 1, fn: positive(math.Log2)},
	"log10": {minArgs: 1, maxArgs: 1, fn: positive(math.Log10)},
	"log1p": {minArgs: 1, maxArgs: 1, fn: func(args []float64) (float64, error) {
		if args[0] <= -1 {
			return 0, domainErr("argument must be greater than -1")
		}
		return math.Log1p(args[0]), nil
	}},

	// Powers and roots.
	"sqrt": {minArgs: 1, maxArgs: 1, fn: bounded(math.Sqrt, 0, math.Inf(1))},
	"cbrt": {minArgs: 1, maxArgs: 1, fn: unary(math.Cbrt)},
	"pow": {minArgs: 2, maxArgs: 2, fn: func(args []float64) (float64, error) {
		if args[0] == 0 && args[1] < 0 {
			return 0, builtinError{kind: ErrDivisionByZero, msg: "0 cannot be raised to a negative power"}
		}
		return math.Pow(args[0], args[1]), nil
	}},
	"hypot": {minArgs: 2, maxArgs: 2, fn: func(args []float64) (float64, error) {
		return math.Hypot(args[0], args[1]), nil
	}},

	// Rounding and magnitude.
	"abs":   {minArgs: 1, maxArgs: 1, fn: unary(math.Abs)},
	"fabs":  {minArgs: 1, maxArgs: 1, fn: unary(math.Abs)},
	"floor": {minArgs: 1, maxArgs: 1, fn: unary(math.Floor)},
	"ceil":  {minArgs: 1, maxArgs: 1, fn: unary(math.Ceil)},
	"trunc": {minArgs: 1, maxArgs: 1, fn: unary(math.Trunc)},
	"round": {minArgs: 1, maxArgs: 1, fn: unary(math.RoundToEven)},
	"copysign": {minArgs: 2, maxArgs: 2, fn: func(args []float64) (float64, error) {
		return math.Copysign(args[0], args[1]), nil
	}},
	"fmod": {minArgs: 2, maxArgs: 2, fn: func(args []float64) (float64, error) {
		if args[1] == 0 {
			return 0, domainErr("modulus must not be zero")
		}
		return math.Mod(args[0], args[1]), nil
	}},
	"remainder": {minArgs: 2, maxArgs: 2, fn: func(args []float64) (float64, error) {
		if args[1] == 0 {
			return 0, domainErr("divisor must not be zero")
		}
		return math.Remainder(args[0], args[1]), nil
	}},

	// Special functions.
	"gamma": {minArgs: 1, maxArgs: 1, fn: func(args []float64) (float64, error) {
		if isNonPositiveInteger(args[0]) {
			return 0, domainErr("undefined for non-positive integers")
		}
		return math.Gamma(args[0]), nil
	}},
	"lgamma": {minArgs: 1, maxArgs: 1, fn: func(args []float64) (float64, error) {
		if isNonPositiveInteger(args[0]) {
			return 0, domainErr("undefined for non-positive integers")
		}
		v, _ := math.Lgamma(args[0])
		return v, nil
	}},
	"erf":  {minArgs: 1, maxArgs: 1, fn: unary(math.Erf)},
	"erfc": {minArgs: 1, maxArgs: 1, fn: unary(math.Erfc)},

	// Integer functions.
	"factorial": {minArgs: 1, maxArgs: 1, fn: factorial},
	"gcd": {minArgs: 2, maxArgs: 2, fn: func(args []float64) (float64, error) {
		a, b := args[0], args[1]
		if !isInteger(a) || !isInteger(b) {
			return 0, domainErr("arguments must be integers")
		}
		return gcd(a, b), nil
	}},
	"lcm": {minArgs: 2, maxArgs: 2, fn: func(args []float64) (float64, error) {
		a, b := args[0], args[1]
		if !isInteger(a) || !isInteger(b) {
			return 0, domainErr("arguments must be integers")
		}
		if a == 0 || b == 0 {
			return 0, nil
		}
		a, b = math.Abs(a), math.Abs(b)
		return a / gcd(a, b) * b, nil
	}},
	"isqrt": {minArgs: 1, maxArgs: 1, fn: func(args []float64) (float64, error) {
		n := args[0]
		if n < 0 || !isInteger(n) {
			return 0, domainErr("only accepts non-negative integers")
		}
		r := math.Floor(math.Sqrt(n))
		for r*r > n {
			r--
		}
		for (r+1)*(r+1) <= n {
			r++
		}
		return r, nil
	}},
	"comb": {minArgs: 2, maxArgs: 2, fn: comb},
	"perm": {minArgs: 1, maxArgs: 2, fn: perm},
}

func unary(f func(float64) float64) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		return f(args[0]), nil
	}
}

func bounded(f func(float64) float64, lo, hi float64) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		if args[0] < lo || args[0] > hi {
			if math.IsInf(hi, 1) {
				return 0, domainErr("argument must be at least %s", Format(lo))
			}
			return 0, domainErr("argument must be in [%s, %s]", Format(lo), Format(hi))
		}
		return f(args[0]), nil
	}
}

func positive(f func(float64) float64) func([]float64) (float64, error) {
	return func(args []float64) (float64, error) {
		if args[0] <= 0 {
			return 0, domainErr("argument must be positive")
		}
		return f(args[0]), nil
	}
}

// logN is the natural logarithm, or the logarithm to an explicit base.
func logN(args []float64) (float64, error) {
	if args[0] <= 0 {
		return 0, domainErr("argument must be positive")
	}
	if len(args) == 1 {
		return math.Log(args[0]), nil
	}
	base := args[1]
	if base <= 0 {
		return 0, domainErr("base must be positive")
	}
	if base == 1 {
		return 0, builtinError{kind: ErrDivisionByZero, msg: "base must not be 1"}
	}
	return math.Log(args[0]) / math.Log(base), nil
}

// maxFactorial is the largest n whose factorial fits in a float64.
const maxFactorial = 170

func factorial(args []float64) (float64, error) {
	n := args[0]
	if n < 0 || n != math.Trunc(n) {
		return 0, domainErr("only accepts non-negative integers")
	}
	if n > maxFactorial {
		return 0, domainErr("result too large")
	}
	r := 1.0
	for i := 2.0; i <= n; i++ {
		r *= i
	}
	return r, nil
}

func isInteger(x float64) bool {
	return !math.IsInf(x, 0) && x == math.Trunc(x)
}

func isNonPositiveInteger(x float64) bool {
	return x <= 0 && isInteger(x)
}

func gcd(a, b float64) float64 {
	a, b = math.Abs(a), math.Abs(b)
	for b != 0 {
		a, b = b, math.Mod(a, b)
	}
	return a
}

// combArgs checks the n and k arguments of comb and perm.
func combArgs(n, k float64) error {
	if n < 0 || k < 0 || !isInteger(n) || !isInteger(k) {
		return domainErr("only accepts non-negative integers")
	}
	return nil
}

// comb is the number of ways to choose k items from n, zero when k > n.
func comb(args []float64) (float64, error) {
	n, k := args[0], args[1]
	if err := combArgs(n, k); err != nil {
		return 0, err
	}
	if k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}
	r := 1.0
	for i := 1.0; i <= k; i++ {
		r = r * (n - k + i) / i
	}
	return math.Round(r), nil
}

// perm is the number of ordered arrangements of k items from n. With one
// argument it is n!.
func perm(args []float64) (float64, error) {
	n := args[0]
	k := n
	if len(args) == 2 {
		k = args[1]
	}
	if err := combArgs(n, k); err != nil {
		return 0, err
	}
	if k > n {
		return 0, nil
	}
	r := 1.0
	for i := 0.0; i < k; i++ {
		r *= n - i
	}
	return r, nil
}

// Functions returns the sorted names of the callable functions.
func Functions() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Constants returns the sorted names of the named constants.
func Constants() []string {
	names := make([]string, 0, len(constants))
	for name := range constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
