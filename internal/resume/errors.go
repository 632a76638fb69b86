package resume

import "errors"

var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .pdf, .doc and .docx. Client error.
	ErrUnsupportedFormat = errors.New("unsupported file format, please upload PDF or DOC/DOCX files")

	// ErrExtractionFailed means the file was recognized but could not be
	// parsed (corrupt, encrypted, malformed).
	ErrExtractionFailed = errors.New("failed to extract text from resume")

	// ErrProcessingFailed wraps unexpected failures in the pipeline.
	ErrProcessingFailed = errors.New("failed to process resume")
)
