package config

// Settings is the merged kickstart configuration.
type Settings struct {
	// TemplatesDir holds user templates; the embedded ones are used when
	// it does not exist.
	TemplatesDir   string `mapstructure:"templates_dir" yaml:"templates_dir"`
	PackageManager string `mapstructure:"package_manager" yaml:"package_manager"`
	Editor         string `mapstructure:"editor" yaml:"editor"`
	ProjectsFile   string `mapstructure:"projects_file" yaml:"projects_file"`
	RecordProjects bool   `mapstructure:"record_projects" yaml:"record_projects"`
	LogLevel       string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat      string `mapstructure:"log_format" yaml:"log_format"`
	NoColor        bool   `mapstructure:"no_color" yaml:"no_color"`
}

// Setting keys.
const (
	KeyTemplatesDir   = "templates_dir"
	KeyPackageManager = "package_manager"
	KeyEditor         = "editor"
	KeyProjectsFile   = "projects_file"
	KeyRecordProjects = "record_projects"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyNoColor        = "no_color"
)

// Entry is one key with its effective value, for listing.
type Entry struct {
	Key   string
	Value string
}
