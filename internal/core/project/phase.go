package project

// Phase is one ordered stage of the build pipeline.
type Phase string

const (
	PhaseCreateRoot    Phase = "create-root"
	PhaseInitSteps     Phase = "init-steps"
	PhaseInstall       Phase = "install"
	PhasePostInitSteps Phase = "post-init-steps"
	PhaseCreateFolders Phase = "create-folders"
	PhaseCreateFiles   Phase = "create-files"
	PhaseCopyTemplates Phase = "copy-templates"
	PhaseMergeScripts  Phase = "merge-scripts"
	PhaseOpenEditor    Phase = "open-editor"
)

// Phases returns every phase in execution order.
func Phases() []Phase {
	return []Phase{
		PhaseCreateRoot,
		PhaseInitSteps,
		PhaseInstall,
		PhasePostInitSteps,
		PhaseCreateFolders,
		PhaseCreateFiles,
		PhaseCopyTemplates,
		PhaseMergeScripts,
		PhaseOpenEditor,
	}
}

// Fatal reports whether a failure of p aborts the remaining phases. Step
// phases never fail as a whole; their failed steps are recorded instead.
func (p Phase) Fatal() bool {
	return p != PhaseOpenEditor
}

// RunsCommands reports whether p spawns child processes that share the
// terminal with kickstart.
func (p Phase) RunsCommands() bool {
	switch p {
	case PhaseInitSteps, PhaseInstall, PhasePostInitSteps, PhaseOpenEditor:
		return true
	}
	return false
}

// Title returns a human-readable label.
func (p Phase) Title() string {
	switch p {
	case PhaseCreateRoot:
		return "Create project directory"
	case PhaseInitSteps:
		return "Run init steps"
	case PhaseInstall:
		return "Install dependencies"
	case PhasePostInitSteps:
		return "Run post-init steps"
	case PhaseCreateFolders:
		return "Create folders"
	case PhaseCreateFiles:
		return "Create files"
	case PhaseCopyTemplates:
		return "Copy premade configs"
	case PhaseMergeScripts:
		return "Merge package scripts"
	case PhaseOpenEditor:
		return "Open in editor"
	}
	return string(p)
}
