package config

// RequestPreset is a saved deployment request the student can re-submit
// without retyping. Presets are local to this machine; the backend never
// sees them until submission.
type RequestPreset struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	CPU     float64 `yaml:"cpu"`
	Memory  int     `yaml:"memory"`
	Storage int     `yaml:"storage"`
}

// Settings holds the persisted client settings.
type Settings struct {
	ServerURL string `yaml:"server_url"`
}
