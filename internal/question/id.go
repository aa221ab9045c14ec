// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package question

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// MakeID builds a question identifier of the form T-YYYYMMDD-XXXX. One
// random base is shared across a batch and offset by the question's index,
// which makes IDs unique within one result but NOT globally: concurrent
// requests on the same day can collide.
func MakeID(date time.Time, base, index int) string {
	return fmt.Sprintf("T-%s-%d", date.Format("20060102"), base+index)
}

// RandomBase returns a batch ID base in [1000, 9999].
func RandomBase() int {
	return 1000 + rand.IntN(9000)
}
