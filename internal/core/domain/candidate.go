package domain

import "io"

// Candidate is one uploaded file before policy evaluation. Source is
// once-readable and is consumed by whichever engine the candidate is handed
// to. Size is the size declared by the client and is advisory only.
type Candidate struct {
	FieldName   string
	Filename    string
	ContentType string
	Size        int64
	Source      io.Reader
}

// Submission is the parsed form data handed in by the request-parsing
// collaborator: plain form values plus zero or more candidates per field.
type Submission struct {
	Values map[string]string
	Files  map[string][]*Candidate
}

// Value returns the submitted form value for key, or "".
func (s *Submission) Value(key string) string {
	if s == nil || s.Values == nil {
		return ""
	}
	return s.Values[key]
}

// Candidates returns the uploaded candidates for field, in submission order.
func (s *Submission) Candidates(field string) []*Candidate {
	if s == nil || s.Files == nil {
		return nil
	}
	return s.Files[field]
}

// StoreRequest is the fully-resolved input an engine receives: the filename
// and destination have already been computed by the field processor, so
// engines never see the raw policy.
type StoreRequest struct {
	Name        string
	Destination string
	ContentType string
	Size        int64
	Body        io.Reader
	Options     map[string]string
}

// Option returns the engine option for key, or "".
func (r *StoreRequest) Option(key string) string {
	if r.Options == nil {
		return ""
	}
	return r.Options[key]
}
