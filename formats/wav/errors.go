// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

// ErrEncode wraps failures reported by the underlying WAV writer.
var ErrEncode = errors.New("writing WAV")
