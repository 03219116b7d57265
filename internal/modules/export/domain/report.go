package domain

import "fmt"

type ReportKind string

const (
	ReportKindDay     ReportKind = "day"
	ReportKindMonth   ReportKind = "month"
	ReportKindHistory ReportKind = "history"
)

func (k ReportKind) Validate() error {
	switch k {
	case ReportKindDay, ReportKindMonth, ReportKindHistory:
		return nil
	default:
		return fmt.Errorf("unknown report kind: %s", k)
	}
}

// ReportPayload is the wire shape handed to exporter plugins, already
// aggregated on the host side. Plugins only format; they never see the
// database.
type ReportPayload struct {
	Kind     ReportKind      `json:"kind"`
	Label    string          `json:"label"`
	Empty    bool            `json:"empty"`
	Tasks    []ReportGroup   `json:"tasks,omitempty"`
	Total    *ReportGroup    `json:"total,omitempty"`
	Sessions []ReportSession `json:"sessions,omitempty"`
}

type ReportGroup struct {
	Task            string  `json:"task,omitempty"`
	Sessions        int     `json:"sessions"`
	DurationSeconds float64 `json:"duration_seconds"`
	Earned          float64 `json:"earned"`
	HourlyRate      float64 `json:"hourly_rate"`
}

type ReportSession struct {
	ID              int64   `json:"id"`
	Task            string  `json:"task"`
	StartedAt       string  `json:"started_at"`
	DurationSeconds float64 `json:"duration_seconds"`
	Count           int     `json:"count"`
	Price           float64 `json:"price"`
	Earned          float64 `json:"earned"`
}
