package pareto

import "fmt"

func errVertexOutOfRangef(which string, v, n int) error {
	return fmt.Errorf("%w: %s=%d not in [1,%d]", ErrVertexOutOfRange, which, v, n)
}
