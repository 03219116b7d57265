package dto

type ExporterInfo struct {
	Name    string
	Version string
	Enabled bool
	Binary  string
	Formats []string
}

type DoctorResult struct {
	Name            string
	BinaryReachable bool
	ChecksumValid   bool
	LifecycleOK     bool
	Error           string
}

type ExportInput struct {
	Exporter string
	Format   string
	Kind     string
	Label    string
	Limit    int
}

type ExportOutput struct {
	Exporter string
	Format   string
	Output   string
}
