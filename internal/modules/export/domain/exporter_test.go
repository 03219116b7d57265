package domain_test

import (
	"testing"

	"tally/internal/modules/export/domain"
)

const validSHA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

func TestManifestValidation(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name      string
		manifest  domain.Manifest
		shouldErr bool
	}{
		{name: "valid", manifest: domain.Manifest{Name: "csv", Version: "1.0.0", Binary: "/tmp/csv", SHA256: validSHA, Enabled: true, Formats: []domain.Format{"csv"}}},
		{name: "missing name", manifest: domain.Manifest{Version: "1", Binary: "/tmp/csv", SHA256: validSHA, Formats: []domain.Format{"csv"}}, shouldErr: true},
		{name: "missing version", manifest: domain.Manifest{Name: "csv", Binary: "/tmp/csv", SHA256: validSHA, Formats: []domain.Format{"csv"}}, shouldErr: true},
		{name: "missing binary", manifest: domain.Manifest{Name: "csv", Version: "1", SHA256: validSHA, Formats: []domain.Format{"csv"}}, shouldErr: true},
		{name: "uppercase sha", manifest: domain.Manifest{Name: "csv", Version: "1", Binary: "/tmp/csv", SHA256: "AAAA", Formats: []domain.Format{"csv"}}, shouldErr: true},
		{name: "no formats", manifest: domain.Manifest{Name: "csv", Version: "1", Binary: "/tmp/csv", SHA256: validSHA}, shouldErr: true},
		{name: "duplicate format", manifest: domain.Manifest{Name: "csv", Version: "1", Binary: "/tmp/csv", SHA256: validSHA, Formats: []domain.Format{"csv", "csv"}}, shouldErr: true},
		{name: "invalid format name", manifest: domain.Manifest{Name: "csv", Version: "1", Binary: "/tmp/csv", SHA256: validSHA, Formats: []domain.Format{"CSV!"}}, shouldErr: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.manifest.Validate()
			if tc.shouldErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.shouldErr && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestManifestHasFormat(t *testing.T) {
	t.Parallel()
	manifest := domain.Manifest{Formats: []domain.Format{"csv", "markdown"}}
	if !manifest.HasFormat("markdown") {
		t.Fatalf("expected markdown to be supported")
	}
	if manifest.HasFormat("json") {
		t.Fatalf("did not expect json support")
	}
}

func TestReportKindValidation(t *testing.T) {
	t.Parallel()
	for _, kind := range []domain.ReportKind{domain.ReportKindDay, domain.ReportKindMonth, domain.ReportKindHistory} {
		if err := kind.Validate(); err != nil {
			t.Fatalf("validate kind %s: %v", kind, err)
		}
	}
	if err := domain.ReportKind("week").Validate(); err == nil {
		t.Fatalf("expected unknown kind error")
	}
}

func TestRenderRequestValidation(t *testing.T) {
	t.Parallel()
	req := domain.RenderRequest{Format: "csv", ReportJSON: `{"kind":"day"}`}
	if err := req.Validate(); err != nil {
		t.Fatalf("validate request: %v", err)
	}
	if err := (domain.RenderRequest{Format: "csv"}).Validate(); err == nil {
		t.Fatalf("expected missing payload error")
	}
	if err := (domain.RenderRequest{Format: "", ReportJSON: "{}"}).Validate(); err == nil {
		t.Fatalf("expected invalid format error")
	}
}
