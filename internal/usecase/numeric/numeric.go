// Package numeric holds the arithmetic helpers: factorials, Fibonacci terms,
// primality, parity and averaging.
//
// Factorial and Fibonacci return *big.Int so results never overflow.
package numeric

import (
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/aalvaropc/kata/internal/domain"
)

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add returns a + b.
func Add[T Number](a, b T) T {
	return a + b
}

// Factorial computes n! recursively.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, domain.NegativeArgument("numeric.factorial", n)
	}
	return factorial(n), nil
}

func factorial(n int) *big.Int {
	if n == 0 {
		return big.NewInt(1)
	}
	return new(big.Int).Mul(big.NewInt(int64(n)), factorial(n-1))
}

// FactorialIterative computes n! with a loop.
func FactorialIterative(n int) (*big.Int, error) {
	if n < 0 {
		return nil, domain.NegativeArgument("numeric.factorial_iterative", n)
	}
	result := big.NewInt(1)
	for i := 2; i <= n; i++ {
		result.Mul(result, big.NewInt(int64(i)))
	}
	return result, nil
}

// Fibonacci returns the nth term (zero-based) of 0, 1, 1, 2, 3, ...
func Fibonacci(n int) (*big.Int, error) {
	if n < 0 {
		return nil, domain.NegativeArgument("numeric.fibonacci", n)
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for range n {
		a.Add(a, b)
		a, b = b, a
	}
	return a, nil
}

// FibonacciSequence returns the first n terms.
func FibonacciSequence(n int) ([]*big.Int, error) {
	if n < 0 {
		return nil, domain.NegativeArgument("numeric.fibonacci_sequence", n)
	}
	out := make([]*big.Int, 0, n)
	a, b := big.NewInt(0), big.NewInt(1)
	for range n {
		out = append(out, new(big.Int).Set(a))
		a.Add(a, b)
		a, b = b, a
	}
	return out, nil
}

// IsPrime reports whether n is prime. Everything below 2 is not.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i <= n/i; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func IsEven[T constraints.Integer](n T) bool {
	return n%2 == 0
}

// EvenNumbers returns the even integers in [0, n).
func EvenNumbers(n int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, 0, (n+1)/2)
	for x := 0; x < n; x += 2 {
		out = append(out, x)
	}
	return out
}

// AllPositive reports whether every element is > 0. It is true for an empty slice.
func AllPositive[T Number](xs []T) bool {
	for _, x := range xs {
		if x <= 0 {
			return false
		}
	}
	return true
}

// Average returns the arithmetic mean.
func Average[T Number](xs []T) (float64, error) {
	if len(xs) == 0 {
		return 0, domain.EmptyInput("numeric.average")
	}
	var total float64
	for _, x := range xs {
		total += float64(x)
	}
	return total / float64(len(xs)), nil
}

// Divide returns a / b as a float.
func Divide[T Number](a, b T) (float64, error) {
	if b == 0 {
		return 0, domain.DivisionByZero("numeric.divide")
	}
	return float64(a) / float64(b), nil
}
