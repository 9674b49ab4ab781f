package domain

import "errors"

// ErrMalformed indicates the server response could not be normalised
// into a typed record: a required identity field is missing or a field
// holds a value the record type cannot absorb.
var ErrMalformed = errors.New("malformed response")
