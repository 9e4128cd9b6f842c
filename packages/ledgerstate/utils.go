package ledgerstate

import (
	"math"

	"github.com/cockroachdb/errors"
)

// SafeAddInt64 adds the two given int64 values and returns an error if the addition would overflow.
func SafeAddInt64(a int64, b int64) (result int64, err error) {
	if b > 0 && a > math.MaxInt64-b {
		err = errors.New("overflow in addition")
		return
	}
	if b < 0 && a < math.MinInt64-b {
		err = errors.New("underflow in addition")
		return
	}

	return a + b, nil
}
