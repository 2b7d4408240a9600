package stage

import "errors"

var (
	// ErrMissingField reports a required item field absent for the item type
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidValue reports an unparsable or out-of-range field value
	ErrInvalidValue = errors.New("invalid field value")

	// ErrUnknownKind reports an unrecognized item type
	ErrUnknownKind = errors.New("unknown item type")

	// ErrUnknownFormat reports a stage file with an unsupported extension
	ErrUnknownFormat = errors.New("unknown stage format")
)
