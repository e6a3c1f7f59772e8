package scheduling

import (
	"math"
	"strconv"
)

// Factor is a fixed-point ratio in thousandths: 2.5 is Factor(2500).
type Factor int

const factorScale = 1000

func FactorFromFloat(f float64) Factor {
	return Factor(math.Round(f * factorScale))
}

func (f Factor) Float() float64 {
	return float64(f) / factorScale
}

func (f Factor) String() string {
	return strconv.FormatFloat(f.Float(), 'f', -1, 64)
}

// mulDays multiplies whole days by one or more factors, rounding half up.
func mulDays(days int, factors ...Factor) int {
	num := int64(days)
	den := int64(1)
	for _, f := range factors {
		num *= int64(f)
		den *= factorScale
	}
	if num <= 0 {
		return int(num / den)
	}
	return int((num + den/2) / den)
}

func maxFactor(a, b Factor) Factor {
	if a > b {
		return a
	}
	return b
}
