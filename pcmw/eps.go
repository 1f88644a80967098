package pcmw

import "math"

// epsilon is the solver-wide numeric tolerance. Comparisons against prizes
// and shifted costs go through these helpers so that floating-point noise at
// a boundary never flips a classification.
const epsilon = 1e-9

func eq(a, b float64) bool { return math.Abs(a-b) <= epsilon }

func gt(a, b float64) bool { return a > b+epsilon }

func lt(a, b float64) bool { return a < b-epsilon }

func ge(a, b float64) bool { return a >= b-epsilon }
