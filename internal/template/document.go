package template

// Document is the on-disk shape of a project template. Strings may contain
// the project-name placeholder; Document itself is never mutated after load.
type Document struct {
	Description     string            `json:"description,omitempty" yaml:"description,omitempty"`
	MinVersion      string            `json:"minVersion,omitempty" yaml:"minVersion,omitempty"`
	Dependencies    []string          `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	DevDependencies []string          `json:"devDependencies,omitempty" yaml:"devDependencies,omitempty"`
	InitSteps       []string          `json:"initSteps" yaml:"initSteps"`
	PostInitSteps   []string          `json:"postInitSteps,omitempty" yaml:"postInitSteps,omitempty"`
	InstallSteps    *InstallSteps     `json:"installSteps,omitempty" yaml:"installSteps,omitempty"`
	Folders         []string          `json:"folders" yaml:"folders"`
	Files           []FileEntry       `json:"files" yaml:"files"`
	Scripts         map[string]string `json:"scripts" yaml:"scripts"`
	VSCodeSettings  bool              `json:"vscodeSettings,omitempty" yaml:"vscodeSettings,omitempty"`
}

// InstallSteps lists packages installed by the dependency phase.
// Either list may be absent in the document.
type InstallSteps struct {
	Dependencies    []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	DevDependencies []string `json:"devDependencies,omitempty" yaml:"devDependencies,omitempty"`
}

// FileEntry is one file of the skeleton. Content is optional.
type FileEntry struct {
	NameAndPath string `json:"nameAndPath" yaml:"nameAndPath"`
	Content     string `json:"content,omitempty" yaml:"content,omitempty"`
}
