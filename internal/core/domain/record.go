package domain

// FileRecord is the immutable outcome of one upload attempt. Exactly one of
// StoredPath, PublicURL or InlineBytes is populated, depending on the engine
// that produced the record.
type FileRecord struct {
	Filename    string
	ContentType string
	SizeBytes   uint64
	StoredPath  string
	PublicURL   string
	InlineBytes []byte
	Succeeded   bool
	Error       string
	Message     string
}

// FailedRecord returns a FileRecord describing a failed attempt for the given
// resolved filename.
func FailedRecord(filename, contentType string, err error) FileRecord {
	return FileRecord{
		Filename:    filename,
		ContentType: contentType,
		Error:       err.Error(),
		Message:     "unable to save " + filename,
	}
}
