package commands

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"blog-store/internal/config"
	"blog-store/internal/logging"
	"blog-store/internal/repository/sqlite"
	"blog-store/internal/service"
)

type app struct {
	dbPath string

	db     *sql.DB
	schema func(ctx context.Context) error
	users  service.UserService
	boards service.BoardService
}

func Execute() error {
	root, a := newRootCmd()
	defer a.close()
	return root.Execute()
}

// newRootCmd builds the command tree. Repositories are opened in
// PersistentPreRunE; the caller closes the returned app once the command
// finishes, whether or not it failed.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:          "blogctl",
		Short:        "Administer the blog user and post store",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
	}

	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "sqlite database path (overrides BLOG_DATABASE_PATH)")

	root.AddCommand(initCmd(a), userCmd(a), boardCmd(a))
	return root, a
}

func (a *app) open() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.dbPath != "" {
		cfg.Database.Path = a.dbPath
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db, logger)
	boardRepo := sqlite.NewBoardRepository(db, logger)

	a.db = db
	a.schema = func(ctx context.Context) error {
		return sqlite.InitSchema(ctx, userRepo, boardRepo)
	}
	a.users = service.NewUserService(userRepo)
	a.boards = service.NewBoardService(boardRepo, userRepo)
	logger.Debugf("using database %s", cfg.Database.Path)
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func initCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the users and boards tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.schema(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema ready")
			return nil
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
