package domain

import (
	"errors"
	"fmt"
	"regexp"
)

type Format string

var (
	ErrExporterNotFound  = errors.New("exporter not found")
	ErrExporterDisabled  = errors.New("exporter is disabled")
	ErrChecksumMismatch  = errors.New("exporter checksum mismatch")
	ErrFormatUnsupported = errors.New("format not supported by exporter")
	ErrExporterTimeout   = errors.New("exporter timeout")
)

var (
	sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)
	formatPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

// Manifest describes one installed exporter binary. The checksum pins
// the exact binary the user vetted; a rebuilt or replaced binary must
// be re-registered.
type Manifest struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Binary  string   `json:"binary"`
	SHA256  string   `json:"sha256"`
	Enabled bool     `json:"enabled"`
	Formats []Format `json:"formats"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("exporter name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("exporter version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("exporter binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("exporter sha256 must be lowercase 64-char hex")
	}
	if len(m.Formats) == 0 {
		return fmt.Errorf("exporter formats are required")
	}
	seen := map[Format]struct{}{}
	for _, format := range m.Formats {
		if err := format.Validate(); err != nil {
			return err
		}
		if _, ok := seen[format]; ok {
			return fmt.Errorf("duplicate format: %s", format)
		}
		seen[format] = struct{}{}
	}
	return nil
}

func (f Format) Validate() error {
	if !formatPattern.MatchString(string(f)) {
		return fmt.Errorf("invalid format name: %q", string(f))
	}
	return nil
}

func (m Manifest) HasFormat(format Format) bool {
	for _, f := range m.Formats {
		if f == format {
			return true
		}
	}
	return false
}

type Metadata struct {
	Name    string
	Version string
	Formats []Format
}

type RenderRequest struct {
	Format     Format
	ReportJSON string
}

func (r RenderRequest) Validate() error {
	if err := r.Format.Validate(); err != nil {
		return err
	}
	if r.ReportJSON == "" {
		return fmt.Errorf("report payload is required")
	}
	return nil
}

type RenderResult struct {
	Output string
}
