// quickmemo/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ViniZap4/quickmemo/app"
	"github.com/ViniZap4/quickmemo/auth"
	"github.com/ViniZap4/quickmemo/autosave"
	"github.com/ViniZap4/quickmemo/config"
	"github.com/ViniZap4/quickmemo/domain"
	"github.com/ViniZap4/quickmemo/filesystem"
	httphandlers "github.com/ViniZap4/quickmemo/http"
	"github.com/ViniZap4/quickmemo/logging"
	"github.com/ViniZap4/quickmemo/postgres"
	"github.com/ViniZap4/quickmemo/tui"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "quickmemo",
		Short:         "Quick memo pad with autosave",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runEditor,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <data_dir>/config.yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print memos, newest first",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	listCmd.Flags().StringP("query", "q", "", "substring or glob filter")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the memo directory over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Mirror all memos into Postgres",
		Args:  cobra.NoArgs,
		RunE:  runBackup,
	}

	root.AddCommand(listCmd, serveCmd, backupCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func consoleSetup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, log, nil
}

func runEditor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, closer, err := logging.NewFile(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	storage, err := filesystem.NewStorage(cfg.MemoDir(), log)
	if err != nil {
		return err
	}
	scratch := autosave.New(cfg.AutoSavePath(), cfg.AutoSaveInterval, autosave.WithLogger(log))

	shell := app.New(storage, scratch, app.Options{
		DefaultTitle: cfg.DefaultTitle,
		Logger:       log,
	})
	log.Info().Str("dir", storage.Dir()).Msg("editor started")

	if _, err := tea.NewProgram(tui.New(shell), tea.WithAltScreen()).Run(); err != nil {
		shell.Shutdown()
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, log, err := consoleSetup()
	if err != nil {
		return err
	}

	storage, err := filesystem.NewStorage(cfg.MemoDir(), log)
	if err != nil {
		return err
	}
	memos, err := storage.LoadAll()
	if err != nil {
		return err
	}

	query, _ := cmd.Flags().GetString("query")
	return printMemos(cmd.OutOrStdout(), domain.Filter(memos, query))
}

func printMemos(w io.Writer, memos []*domain.Memo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUPDATED\tTITLE")
	for _, m := range memos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.ID, m.DisplayDate(), m.Title)
	}
	return tw.Flush()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := consoleSetup()
	if err != nil {
		return err
	}

	storage, err := filesystem.NewStorage(cfg.MemoDir(), log)
	if err != nil {
		return err
	}
	authMW, err := auth.Middleware(cfg.Server.Password)
	if err != nil {
		return err
	}
	if cfg.Server.Password == "" {
		log.Warn().Msg("no password configured, API is unauthenticated")
	}

	server := httphandlers.NewApp(httphandlers.NewServer(storage, log), authMW)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		_ = server.Shutdown()
	}()

	log.Info().Str("addr", cfg.Server.Addr).Str("dir", storage.Dir()).Msg("server starting")
	return server.Listen(cfg.Server.Addr)
}

func runBackup(cmd *cobra.Command, args []string) error {
	cfg, log, err := consoleSetup()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database_url is required (set DATABASE_URL)")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := postgres.Migrate(cfg.DatabaseURL); err != nil {
		return err
	}
	db, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	storage, err := filesystem.NewStorage(cfg.MemoDir(), log)
	if err != nil {
		return err
	}
	memos, err := storage.LoadAll()
	if err != nil {
		return err
	}

	res, err := postgres.Mirror(ctx, postgres.NewRepository(db), memos)
	log.Info().Int("created", res.Created).Int("updated", res.Updated).Msg("backup finished")
	return err
}
