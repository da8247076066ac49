package persistence

// SaveErrorKind classifies a failed save
type SaveErrorKind string

const (
	// ErrorQuotaExceeded means the store had no room for the value
	ErrorQuotaExceeded SaveErrorKind = "quota_exceeded"
	// ErrorUnknown covers every other failure, serialisation included
	ErrorUnknown SaveErrorKind = "unknown"
)

// SaveResult is the outcome of a save. Error is empty on success.
type SaveResult struct {
	Success bool          `json:"success"`
	Error   SaveErrorKind `json:"error,omitempty"`
}

func saved() SaveResult {
	return SaveResult{Success: true}
}

func failed(kind SaveErrorKind) SaveResult {
	return SaveResult{Success: false, Error: kind}
}
