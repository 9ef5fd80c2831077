// SPDX-License-Identifier: EPL-2.0

package trace

import (
	"errors"
	"fmt"
)

// ErrRecordList is returned by ParseRecords for malformed input.
var ErrRecordList = errors.New("invalid record list")

// RecordError is the failure of one record inside a batch.
type RecordError struct {
	Record int
	Err    error
}

func (e *RecordError) Error() string { return fmt.Sprintf("record %d: %v", e.Record, e.Err) }
func (e *RecordError) Unwrap() error { return e.Err }
