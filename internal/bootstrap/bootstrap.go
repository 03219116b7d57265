package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	cataloginadapter "tally/internal/modules/catalog/adapter/in"
	catalogoutadapter "tally/internal/modules/catalog/adapter/out"
	catalogservice "tally/internal/modules/catalog/service"
	catalogusecase "tally/internal/modules/catalog/usecase"
	exportinadapter "tally/internal/modules/export/adapter/in"
	exportoutadapter "tally/internal/modules/export/adapter/out"
	exportservice "tally/internal/modules/export/service"
	exportusecase "tally/internal/modules/export/usecase"
	reportinadapter "tally/internal/modules/report/adapter/in"
	reportoutadapter "tally/internal/modules/report/adapter/out"
	reportservice "tally/internal/modules/report/service"
	reportusecase "tally/internal/modules/report/usecase"
	trackerinadapter "tally/internal/modules/tracker/adapter/in"
	trackeroutadapter "tally/internal/modules/tracker/adapter/out"
	trackerservice "tally/internal/modules/tracker/service"
	trackerusecase "tally/internal/modules/tracker/usecase"
	"tally/internal/platform/clock"
	"tally/internal/platform/config"
	uiapp "tally/internal/ui/app"
)

type App struct {
	Config config.Config

	CatalogCLI cataloginadapter.CLIHandler
	TrackerCLI trackerinadapter.CLIHandler
	ReportCLI  reportinadapter.CLIHandler
	ExportCLI  exportinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	taskStore, err := catalogoutadapter.NewSQLiteTaskStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new task store: %w", err)
	}
	catalogUC := catalogusecase.NewInteractor(catalogservice.NewCatalogService(taskStore))

	sessionLog, err := trackeroutadapter.NewSQLiteSessionLog(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new session log: %w", err)
	}
	trackerUC := trackerusecase.NewInteractor(trackerservice.NewTrackerService(
		clk,
		trackeroutadapter.NewCatalogPriceAdapter(catalogUC),
		sessionLog,
	))

	sessionSource, err := reportoutadapter.NewSQLiteSessionSource(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new session source: %w", err)
	}
	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(clk, cfg.Location, sessionSource))

	exportUC := exportusecase.NewInteractor(exportservice.NewExportService(
		exportoutadapter.NewFileManifestStore(cfg.DataPath),
		exportoutadapter.NewGRPCHost(),
		exportoutadapter.NewReportSourceAdapter(reportUC),
	))

	return &App{
		Config:     cfg,
		CatalogCLI: cataloginadapter.NewCLIHandler(catalogUC),
		TrackerCLI: trackerinadapter.NewCLIHandler(trackerUC),
		ReportCLI:  reportinadapter.NewCLIHandler(reportUC),
		ExportCLI:  exportinadapter.NewCLIHandler(exportUC),
	}, nil
}

func RunTracker(app *App) error {
	model := uiapp.NewModel(app.Config.Location, app.TrackerCLI, app.CatalogCLI, app.ReportCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
