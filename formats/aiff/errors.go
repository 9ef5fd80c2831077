// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrEncode wraps failures reported by the underlying AIFF writer
	ErrEncode = errors.New("writing AIFF")
)
