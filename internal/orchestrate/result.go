package orchestrate

// FileStatus is the terminal state of one file's conversion.
type FileStatus string

const (
	StatusSuccess FileStatus = "success"
	StatusError   FileStatus = "error"
)

// PatternBackend is the Backend value reported when the regex chains
// produced the output instead of a model.
const PatternBackend = "fallback-pattern"

// FileResult is one file's outcome. Source and Target are relative to
// their respective roots, slash-separated.
type FileResult struct {
	Source  string
	Target  string
	Status  FileStatus
	Backend string
	AIUsed  bool
	Err     string
}

// FileError pairs a source path with what went wrong.
type FileError struct {
	File  string
	Error string
}

// ProjectResult aggregates a whole-project run. Files preserves
// discovery order; Errors lists the subset that failed.
type ProjectResult struct {
	ConversionID string
	SourceDir    string
	TargetDir    string
	Files        []FileResult
	Errors       []FileError
	Warnings     []string
	AIUsed       bool
}

// Converted counts the files that reached a terminal success state.
func (r ProjectResult) Converted() int {
	n := 0
	for _, f := range r.Files {
		if f.Status == StatusSuccess {
			n++
		}
	}
	return n
}
