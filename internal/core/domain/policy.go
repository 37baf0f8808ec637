package domain

// Filter decides whether a candidate is accepted for upload. Filters run in
// declared order and must be free of engine-specific side effects.
type Filter func(*Submission, *Candidate) bool

// DestinationFunc computes the storage destination for one candidate. It may
// read sibling form values from the submission.
type DestinationFunc func(*Submission, *Candidate) (string, error)

// RenameFunc computes the stored filename for one candidate before
// persistence.
type RenameFunc func(*Submission, *Candidate) (string, error)

// Policy is the per-field upload configuration. It is not mutated after
// construction. Destination is used verbatim when DestinationFunc is nil.
type Policy struct {
	FieldName       string
	Required        bool
	MinCount        int
	MaxCount        int
	Filters         []Filter
	Destination     string
	DestinationFunc DestinationFunc
	Rename          RenameFunc
	EngineOptions   map[string]string
}

// NewPolicy returns a policy for field with the default 1/1 cardinality.
func NewPolicy(field string) Policy {
	return Policy{FieldName: field, MinCount: 1, MaxCount: 1}
}

// Normalized returns a copy of the policy with cardinality bounds clamped to
// the 1/1 defaults: a zero MinCount becomes 1, a MaxCount below MinCount is
// raised to it.
func (p Policy) Normalized() Policy {
	if p.MinCount < 1 {
		p.MinCount = 1
	}
	if p.MaxCount < p.MinCount {
		p.MaxCount = p.MinCount
	}
	return p
}

// Validate reports whether the policy can be bound to a processor.
func (p Policy) Validate() error {
	if p.FieldName == "" {
		return ErrMissingField
	}
	return nil
}
