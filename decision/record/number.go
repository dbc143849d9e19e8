package record

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-json"

	"bati-cost/pkg/util"
)

// Number is a float64 that tolerates the two shapes answers arrive in:
// JSON numbers and free-form strings ("120", "120 m²", "150 000,50 €").
// It is the single normalization point between raw input and computation.
type Number float64

// Num wraps a value for use in record literals and patches.
func Num(v float64) *Number {
	n := Number(v)
	return &n
}

// Float64 dereferences with a zero default for nil receivers.
func (n *Number) Float64() float64 {
	if n == nil {
		return 0
	}
	return float64(*n)
}

func (n *Number) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("number: expected number or string, got %s", data)
	}
	v, ok := util.ParseAmount(s)
	if !ok {
		return fmt.Errorf("number: cannot parse %q", s)
	}
	*n = Number(v)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(n), 'f', -1, 64)), nil
}
