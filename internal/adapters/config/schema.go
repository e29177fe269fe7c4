package config

// Configfile is the structure of the envscan.yaml settings file.
type Configfile struct {
	Root          string   `yaml:"root"`
	AnacondaRoot  string   `yaml:"anaconda_root"`
	ProjectMarker string   `yaml:"project_marker"`
	ReservedDirs  []string `yaml:"reserved_dirs"`
	// BuiltinProbe is a pointer so that an explicit false is kept.
	BuiltinProbe *bool `yaml:"builtin_probe"`
}
