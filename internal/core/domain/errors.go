package domain

import "errors"

// ErrFieldRequired is an error thrown when a required field has no candidates
var ErrFieldRequired = errors.New("field required")

// ErrTooFewFiles is an error thrown when a required field has fewer accepted files than MinCount
var ErrTooFewFiles = errors.New("not enough accepted files")

// ErrUploadFailed is an error thrown when a required upload fails
var ErrUploadFailed = errors.New("file upload failed")

// ErrMissingField is an error thrown when a policy has no field name
var ErrMissingField = errors.New("missing field name")

// ErrMissingEngine is an error thrown when a processor is built without an engine
var ErrMissingEngine = errors.New("missing storage engine")

// ErrDuplicateField is an error thrown when two processors claim the same field
var ErrDuplicateField = errors.New("duplicate field")

// ErrMissingBucket is an error thrown when the s3 engine has no bucket name
var ErrMissingBucket = errors.New("missing bucket name")

// ErrMissingContainer is an error thrown when the azure engine has no container name
var ErrMissingContainer = errors.New("missing container name")

// ErrMissingCredentials is an error thrown when a remote engine has no credentials
var ErrMissingCredentials = errors.New("missing credentials")

// ErrMissingValue is an error thrown when a rename references an absent form value
var ErrMissingValue = errors.New("missing form value")
