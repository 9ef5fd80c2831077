// SPDX-License-Identifier: EPL-2.0

package shru

import (
	"context"

	"github.com/ik5/shru/dxx"
	"github.com/ik5/shru/trace"
)

// DecodeFile reads the file at path and assembles the given records, or all
// of them when none are given.
//
// The error is non-nil only when nothing could be attempted (unreadable file,
// malformed header, invalid options) or ctx ended. Per-record failures are in
// Result.Errors.
func DecodeFile(ctx context.Context, path string, opts trace.Options, records ...int) (*trace.Result, error) {
	if err := opts.Depth.Validate(); err != nil {
		return nil, err
	}

	f, err := dxx.Open(path)
	if err != nil {
		return nil, err
	}

	return trace.Assemble(ctx, f, records, opts)
}
