package classifier

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is the sentinel matched by every MalformedRecordError.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError reports an input record that cannot be classified:
// it is not an object, or its name or description is not a string.
type MalformedRecordError struct {
	Reason string
	// Index is the record position in its batch, or -1 for a single call.
	Index int
}

func (e *MalformedRecordError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %s", ErrMalformedRecord, e.Reason)
	}
	return fmt.Sprintf("%v at index %d: %s", ErrMalformedRecord, e.Index, e.Reason)
}

// Is lets errors.Is match ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
