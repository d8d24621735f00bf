package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller's role or ownership does not permit the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidTransition indicates a document state change the review sequence does not allow,
// e.g. uploading into a locked slot or reviewing a document that has no file.
var ErrInvalidTransition = errors.New("invalid document transition")

// ErrStorage indicates that the document store could not be reached or failed a write/read.
var ErrStorage = errors.New("document storage failure")
