package domain

// FieldResult aggregates the outcome of one field for one submission. Records
// match submission order. Succeeded is false only when a required constraint
// was violated; optional fields succeed regardless of individual outcomes.
type FieldResult struct {
	Field     string
	Records   []FileRecord
	Succeeded bool
	Err       error
}

// Result is the aggregate outcome of a multi-field submission. Error carries
// the first required-field failure, in declared field order.
type Result struct {
	Fields    map[string][]FileRecord
	Succeeded bool
	Error     string
}
