// SPDX-License-Identifier: MIT

package terminal

import (
	"fmt"
	"sort"
)

// Resolve turns the node IDs snapped from POIs into the terminal set:
// empty IDs are dropped, duplicates collapse (several POIs may share a
// nearest node), and the result is sorted ascending.
//
// Errors: ErrInsufficientTerminals when fewer than two distinct IDs remain.
func Resolve(ids []string) ([]string, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)

	if len(out) < 2 {
		return out, fmt.Errorf("%w: got %d", ErrInsufficientTerminals, len(out))
	}

	return out, nil
}
