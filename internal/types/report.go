package types

// BatchReport is the yaml document written by the batch command.
type BatchReport struct {
	IndexURL string               `yaml:"index_url"`
	Packages []BatchPackageReport `yaml:"packages"`
}

type BatchPackageReport struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version,omitempty"`
	License     string   `yaml:"license,omitempty"`
	Depends     string   `yaml:"depends,omitempty"`
	Diagnostics []string `yaml:"diagnostics,omitempty"`
	Error       string   `yaml:"error,omitempty"`
}

// PackageList is the yaml input of the batch command.
type PackageList struct {
	Packages []string `yaml:"packages"`
}
