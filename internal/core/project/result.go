package project

// Status summarizes a build outcome.
type Status string

const (
	// StatusSuccess means every phase ran and nothing was recorded as failed.
	StatusSuccess Status = "success"
	// StatusPartial means the pipeline completed but some init steps failed.
	StatusPartial Status = "partial"
	// StatusFailed means a fatal phase aborted the pipeline.
	StatusFailed Status = "failed"
)

// PhaseRecord describes one phase that ran or was skipped.
type PhaseRecord struct {
	Phase   Phase  `json:"phase"`
	Skipped bool   `json:"skipped,omitempty"`
	Err     error  `json:"-"`
	Error   string `json:"error,omitempty"`
}

// StepFailure records an init or post-init step that failed.
type StepFailure struct {
	Phase   Phase  `json:"phase"`
	Index   int    `json:"index"`
	Command string `json:"command"`
	Dir     string `json:"dir"`
	Err     error  `json:"-"`
	Error   string `json:"error"`
}

// BuildResult reports what a build did. It is returned even when Build
// fails, describing the phases that ran before the abort.
type BuildResult struct {
	Location    string        `json:"location"`
	Phases      []PhaseRecord `json:"phases"`
	FailedSteps []StepFailure `json:"failedSteps,omitempty"`

	InstalledDependencies    []string `json:"installedDependencies,omitempty"`
	InstalledDevDependencies []string `json:"installedDevDependencies,omitempty"`

	CreatedDirs     []string `json:"createdDirs,omitempty"`
	CreatedFiles    []string `json:"createdFiles,omitempty"`
	SkippedFiles    []string `json:"skippedFiles,omitempty"`
	CopiedTemplates []string `json:"copiedTemplates,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
	ScriptsMerged   bool     `json:"scriptsMerged"`

	// EditorErr is set when the editor launch failed. It does not affect Status.
	EditorErr error `json:"-"`
	// AbortedAt names the fatal phase that stopped the build.
	AbortedAt Phase `json:"abortedAt,omitempty"`
}

// Status returns the overall outcome.
func (r *BuildResult) Status() Status {
	switch {
	case r.AbortedAt != "":
		return StatusFailed
	case len(r.FailedSteps) > 0:
		return StatusPartial
	default:
		return StatusSuccess
	}
}

// Ran reports whether phase p executed (skipped phases do not count).
func (r *BuildResult) Ran(p Phase) bool {
	for _, rec := range r.Phases {
		if rec.Phase == p {
			return !rec.Skipped
		}
	}
	return false
}

func (r *BuildResult) record(p Phase, skipped bool, err error) {
	rec := PhaseRecord{Phase: p, Skipped: skipped, Err: err}
	if err != nil {
		rec.Error = err.Error()
	}
	r.Phases = append(r.Phases, rec)
}
