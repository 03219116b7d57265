package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tally/internal/modules/export/domain"
	"tally/internal/modules/export/dto"
	exportout "tally/internal/modules/export/port/out"
)

type ExportService struct {
	store  exportout.ManifestStore
	host   exportout.Host
	source exportout.ReportSource
}

func NewExportService(store exportout.ManifestStore, host exportout.Host, source exportout.ReportSource) *ExportService {
	return &ExportService{store: store, host: host, source: source}
}

func (s *ExportService) List(ctx context.Context) ([]dto.ExporterInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExporterInfo, 0, len(manifests))
	for _, m := range manifests {
		formats := make([]string, 0, len(m.Formats))
		for _, f := range m.Formats {
			formats = append(formats, string(f))
		}
		out = append(out, dto.ExporterInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Binary: m.Binary, Formats: formats})
	}
	return out, nil
}

func (s *ExportService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		binaryOK := fileExists(m.Binary)
		result.BinaryReachable = binaryOK
		checksumOK := false
		if binaryOK {
			checksumOK = checksumMatches(m.Binary, m.SHA256) == nil
		}
		result.ChecksumValid = checksumOK
		if binaryOK && checksumOK && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !binaryOK {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if binaryOK && !checksumOK {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *ExportService) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	kind := domain.ReportKind(input.Kind)
	if err := kind.Validate(); err != nil {
		return dto.ExportOutput{}, err
	}
	format := domain.Format(input.Format)
	manifest, err := s.getRunnableManifest(ctx, input.Exporter, format)
	if err != nil {
		return dto.ExportOutput{}, err
	}

	payload, err := s.buildPayload(ctx, kind, input.Label, input.Limit)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return dto.ExportOutput{}, fmt.Errorf("encode report payload: %w", err)
	}

	req := domain.RenderRequest{Format: format, ReportJSON: string(raw)}
	if err := req.Validate(); err != nil {
		return dto.ExportOutput{}, err
	}
	result, err := s.host.Render(ctx, manifest, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return dto.ExportOutput{}, fmt.Errorf("%w: %s", domain.ErrExporterTimeout, input.Exporter)
		}
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Exporter: input.Exporter, Format: input.Format, Output: result.Output}, nil
}

func (s *ExportService) buildPayload(ctx context.Context, kind domain.ReportKind, label string, limit int) (domain.ReportPayload, error) {
	switch kind {
	case domain.ReportKindDay:
		return s.source.Day(ctx, label)
	case domain.ReportKindMonth:
		return s.source.Month(ctx, label)
	default:
		return s.source.History(ctx, limit)
	}
}

func (s *ExportService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seenNames := map[string]struct{}{}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seenNames[manifest.Name]; ok {
			return nil, fmt.Errorf("duplicate exporter name: %s", manifest.Name)
		}
		seenNames[manifest.Name] = struct{}{}
	}
	return manifests, nil
}

func (s *ExportService) getRunnableManifest(ctx context.Context, name string, format domain.Format) (domain.Manifest, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	manifest := domain.Manifest{}
	found := false
	for _, item := range manifests {
		if item.Name == name {
			manifest = item
			found = true
			break
		}
	}
	if !found {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrExporterNotFound, name)
	}
	if !manifest.Enabled {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrExporterDisabled, name)
	}
	if format != "" && !manifest.HasFormat(format) {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrFormatUnsupported, format)
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return domain.Manifest{}, err
	}
	return manifest, nil
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read exporter binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	actual := hex.EncodeToString(hash[:])
	if actual != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
