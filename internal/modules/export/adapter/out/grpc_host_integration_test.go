package out_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	exportout "tally/internal/modules/export/adapter/out"
	"tally/internal/modules/export/domain"
)

func TestGRPCHostIntegrationCSVExporter(t *testing.T) {
	binPath, checksum := buildCSVExporter(t)
	manifest := domain.Manifest{
		Name:    "csv",
		Version: "1.0.0",
		Binary:  binPath,
		SHA256:  checksum,
		Enabled: true,
		Formats: []domain.Format{"csv"},
	}

	host := exportout.NewGRPCHost()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := host.CheckLifecycle(ctx, manifest); err != nil {
		t.Fatalf("check lifecycle: %v", err)
	}
	metadata, err := host.GetMetadata(ctx, manifest)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if metadata.Name != "csv" {
		t.Fatalf("unexpected metadata name: %s", metadata.Name)
	}

	report := `{"kind":"day","label":"2026-08-24","empty":false,` +
		`"tasks":[{"task":"writing","sessions":2,"duration_seconds":3600,"earned":25,"hourly_rate":25}],` +
		`"total":{"sessions":2,"duration_seconds":3600,"earned":25,"hourly_rate":25}}`
	result, err := host.Render(ctx, manifest, domain.RenderRequest{Format: "csv", ReportJSON: report})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(result.Output, "writing,2,3600,25.00,25.00") {
		t.Fatalf("unexpected csv output:\n%s", result.Output)
	}
	if !strings.Contains(result.Output, "TOTAL,2,3600,25.00,25.00") {
		t.Fatalf("total row missing:\n%s", result.Output)
	}
}

func buildCSVExporter(t *testing.T) (string, string) {
	t.Helper()
	tmp := t.TempDir()
	binPath := filepath.Join(tmp, "csv-exporter")
	cmd := exec.Command("go", "build", "-o", binPath, "./plugins/csv")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build csv exporter: %v\n%s", err, string(out))
	}
	payload, err := os.ReadFile(binPath)
	if err != nil {
		t.Fatalf("read built exporter: %v", err)
	}
	hash := sha256.Sum256(payload)
	return binPath, hex.EncodeToString(hash[:])
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../../"))
}
