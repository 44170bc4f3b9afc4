// SPDX-License-Identifier: EPL-2.0

package audswitch

import "fmt"

// ParseDirectivityType maps a raw pattern index to its DirectivityType.
func ParseDirectivityType(v int) (DirectivityType, error) {
	t := DirectivityType(v)
	if v < 0 || !t.Valid() {
		return Cardioid, fmt.Errorf("%w: got %d", ErrInvalidDirectivityType, v)
	}
	return t, nil
}
