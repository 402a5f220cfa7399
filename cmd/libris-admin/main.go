// Package main is the administration tool for Libris. It prepares the
// database schema, bootstraps staff accounts and seeds a demo catalog.
// The interactive circulation desk lives elsewhere; everything here goes
// through the same service layer it uses.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/openlibro/libris/internal/config"
	"github.com/openlibro/libris/internal/domain"
	"github.com/openlibro/libris/internal/repository/sqlite"
	"github.com/openlibro/libris/internal/service"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "libris-admin",
		Short: "Administration tool for the Libris library system",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(migrateCmd(), createEmployeeCmd(), seedCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds a console logger honoring the configured level.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// openStore connects to the database and returns the generic store.
func openStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*sqlite.DB, *sqlite.Store, error) {
	dbCfg := sqlite.DefaultConfig(cfg.Database.Path)
	dbCfg.JournalMode = cfg.Database.JournalMode
	dbCfg.BusyTimeout = cfg.Database.BusyTimeout
	dbCfg.SynchronousMode = cfg.Database.SynchronousMode
	dbCfg.MaxOpenConns = cfg.Database.MaxOpenConns
	dbCfg.MaxIdleConns = cfg.Database.MaxIdleConns
	dbCfg.ConnMaxLifetime = cfg.Database.ConnMaxLifetime

	db, err := sqlite.NewDB(ctx, dbCfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewStore(db, logger), nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoad(configPath)
			logger := newLogger(cfg)

			ctx := cmd.Context()
			db, store, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			return store.CreateSchema(ctx)
		},
	}
}

func createEmployeeCmd() *cobra.Command {
	var input service.CreateEmployeeInput

	cmd := &cobra.Command{
		Use:   "create-employee",
		Short: "Create a staff account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoad(configPath)
			logger := newLogger(cfg)

			ctx := cmd.Context()
			db, store, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			auth := service.NewAuthService(sqlite.NewEmployeeRepository(store), logger)
			employee, err := auth.CreateEmployee(ctx, input)
			if err != nil {
				return err
			}

			fmt.Printf("created employee %d (%s)\n", employee.ID, employee.LoginName)
			return nil
		},
	}

	cmd.Flags().StringVar(&input.FirstName, "first-name", "", "given name")
	cmd.Flags().StringVar(&input.LastName, "last-name", "", "family name")
	cmd.Flags().StringVar(&input.Email, "email", "", "email address")
	cmd.Flags().StringVar(&input.LoginName, "login", "", "system login name")
	cmd.Flags().StringVar(&input.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&input.Role, "role", "", "job title (defaults to Librarian)")
	cmd.Flags().StringVar(&input.Shift, "shift", "", "working shift")
	for _, flag := range []string{"first-name", "last-name", "email", "login", "password"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load a small demo catalog and user set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.MustLoad(configPath)
			logger := newLogger(cfg)

			ctx := cmd.Context()
			db, store, err := openStore(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.CreateSchema(ctx); err != nil {
				return err
			}

			users := service.NewUserService(sqlite.NewUserRepository(store), logger)
			items := service.NewItemService(sqlite.NewItemRepository(store), logger)

			for _, u := range demoUsers {
				if _, err := users.Register(ctx, u); err != nil {
					return fmt.Errorf("seeding user %s: %w", u.Email, err)
				}
			}
			for _, i := range demoItems {
				if _, err := items.Add(ctx, i); err != nil {
					return fmt.Errorf("seeding item %q: %w", i.Title, err)
				}
			}

			fmt.Printf("seeded %d users and %d items\n", len(demoUsers), len(demoItems))
			return nil
		},
	}
}

var demoUsers = []service.RegisterUserInput{
	{FirstName: "Ana", LastName: "García", Email: "ana.garcia@example.edu", Type: domain.UserTypeStudent, IDNumber: "STU-1001"},
	{FirstName: "Carlos", LastName: "Rodríguez", Email: "carlos.rodriguez@example.edu", Type: domain.UserTypeStudent, IDNumber: "STU-1002"},
	{FirstName: "María", LastName: "Fernández", Email: "maria.fernandez@example.edu", Type: domain.UserTypeInstructor, IDNumber: "INS-2001", Phone: "555-0134"},
}

var demoItems = []service.AddItemInput{
	{Title: "One Hundred Years of Solitude", Author: "Gabriel García Márquez", ISBN: "9780060883287", Category: domain.ItemCategoryBook, Location: "A-12"},
	{Title: "The Art of Computer Programming", Author: "Donald Knuth", ISBN: "9780201896831", Category: domain.ItemCategoryBook, Location: "C-03", ReplacementValue: 250},
	{Title: "National Geographic, March", Category: domain.ItemCategoryMagazine, Location: "R-01"},
	{Title: "Kind of Blue", Author: "Miles Davis", Category: domain.ItemCategoryCD, Location: "M-21"},
}
