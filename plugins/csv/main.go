package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	exportrpc "tally/internal/modules/export/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type payload struct {
	Kind     string    `json:"kind"`
	Label    string    `json:"label"`
	Empty    bool      `json:"empty"`
	Tasks    []group   `json:"tasks"`
	Total    *group    `json:"total"`
	Sessions []session `json:"sessions"`
}

type group struct {
	Task            string  `json:"task"`
	Sessions        int     `json:"sessions"`
	DurationSeconds float64 `json:"duration_seconds"`
	Earned          float64 `json:"earned"`
	HourlyRate      float64 `json:"hourly_rate"`
}

type session struct {
	ID              int64   `json:"id"`
	Task            string  `json:"task"`
	StartedAt       string  `json:"started_at"`
	DurationSeconds float64 `json:"duration_seconds"`
	Count           int     `json:"count"`
	Price           float64 `json:"price"`
	Earned          float64 `json:"earned"`
}

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *exportrpc.Empty) (*exportrpc.Metadata, error) {
	return &exportrpc.Metadata{
		Name:    "csv",
		Version: "1.0.0",
		Formats: []string{"csv"},
	}, nil
}

func (s *server) Render(_ context.Context, in *exportrpc.RenderRequest) (*exportrpc.RenderResponse, error) {
	if in.Format != "csv" {
		return nil, fmt.Errorf("unsupported format: %s", in.Format)
	}
	var report payload
	if err := json.Unmarshal([]byte(in.ReportJSON), &report); err != nil {
		return nil, fmt.Errorf("decode report payload: %w", err)
	}
	switch report.Kind {
	case "day", "month":
		return &exportrpc.RenderResponse{Output: renderSummary(report)}, nil
	case "history":
		return &exportrpc.RenderResponse{Output: renderHistory(report)}, nil
	default:
		return nil, fmt.Errorf("unknown report kind: %s", report.Kind)
	}
}

func renderSummary(report payload) string {
	var b strings.Builder
	b.WriteString("task,sessions,duration_seconds,earned,hourly_rate\n")
	for _, g := range report.Tasks {
		writeGroup(&b, g.Task, g)
	}
	if report.Total != nil {
		writeGroup(&b, "TOTAL", *report.Total)
	}
	return b.String()
}

func writeGroup(b *strings.Builder, label string, g group) {
	fmt.Fprintf(b, "%s,%d,%.0f,%.2f,%.2f\n", escape(label), g.Sessions, g.DurationSeconds, g.Earned, g.HourlyRate)
}

func renderHistory(report payload) string {
	var b strings.Builder
	b.WriteString("id,task,started_at,duration_seconds,count,price,earned\n")
	for _, s := range report.Sessions {
		fmt.Fprintf(&b, "%d,%s,%s,%.0f,%d,%.2f,%.2f\n",
			s.ID, escape(s.Task), s.StartedAt, s.DurationSeconds, s.Count, s.Price, s.Earned)
	}
	return b.String()
}

// escape quotes a field when it contains CSV structural characters.
func escape(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: exportrpc.HandshakeConfig,
		Plugins:         exportrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
