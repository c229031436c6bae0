package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"tablesel/internal/config"
	"tablesel/internal/datatable"
	"tablesel/internal/source"
)

// app holds state shared by every command: flags, loaded config, log file
type app struct {
	configPath string
	logLevel   string
	logFile    string
	selectIDs  []string

	cfg     *config.Config
	logSink io.Closer
}

// setup loads the configuration and points the global logger at the log file.
// Flags override the config file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	svc := config.NewConfigService()
	if a.configPath != "" {
		svc = config.NewConfigServiceAt(a.configPath)
	}

	cfg, err := svc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	a.cfg = cfg

	return a.setupLogging()
}

func (a *app) setupLogging() error {
	level, err := zerolog.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.cfg.Log.Level, err)
	}
	zerolog.SetGlobalLevel(level)

	// stdout belongs to the terminal UI, so logs go to a file or nowhere
	if a.cfg.Log.File == "" {
		log.Logger = zerolog.Nop()
		return nil
	}

	f, err := os.OpenFile(a.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	a.logSink = f
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// close releases the log file. It is safe to call more than once.
func (a *app) close() {
	if a.logSink != nil {
		log.Logger = zerolog.Nop()
		_ = a.logSink.Close()
		a.logSink = nil
	}
}

// loadTable reads a row file and builds a data table from it. An explicit
// --select replaces the selection stored in the file.
func (a *app) loadTable(cmd *cobra.Command, path string) (*datatable.DataTable, error) {
	rows, err := source.Load(path)
	if err != nil {
		return nil, err
	}

	root := datatable.Render(rows.Columns, rows.Rows, a.cfg.Table.Selectable)
	table := datatable.New(root, nil, nil)
	if cmd.Flags().Changed("select") {
		table.SetSelectedRowIDs(a.selectIDs)
	}

	log.Info().
		Str("path", path).
		Int("rows", table.GetRowCount()).
		Int("selected", table.GetSelectedRowCount()).
		Msg("Loaded table")

	return table, nil
}
