package ollama

// Wire structures for the inference server API.

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

type pullRequest struct {
	Name string `json:"name"`
}

type pullEvent struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	Digest    string `json:"digest,omitempty"`
	Total     int64  `json:"total,omitempty"`
	Completed int64  `json:"completed,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
}

const (
	pathTags     = "/api/tags"
	pathPull     = "/api/pull"
	pathGenerate = "/api/generate"

	pullStatusSuccess = "success"
)

// Readiness is the outcome of EnsureModel.
type Readiness int

const (
	// ReadinessUnavailable means the server did not answer the probe.
	ReadinessUnavailable Readiness = iota

	// ReadinessPresent means the model was already listed.
	ReadinessPresent

	// ReadinessPulled means a download was requested and accepted.
	ReadinessPulled

	// ReadinessPullFailed means the download request was refused or failed.
	ReadinessPullFailed
)

// Ready reports whether the model can be used.
func (r Readiness) Ready() bool {
	return r == ReadinessPresent || r == ReadinessPulled
}

// String returns the readiness name.
func (r Readiness) String() string {
	switch r {
	case ReadinessUnavailable:
		return "unavailable"
	case ReadinessPresent:
		return "present"
	case ReadinessPulled:
		return "pulled"
	case ReadinessPullFailed:
		return "pull_failed"
	default:
		return "unknown"
	}
}
