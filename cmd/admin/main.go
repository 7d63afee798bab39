// Comando admin: tareas de operación sobre la base (esquema, usuarios, stock e importación).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jhoicas/distribuidora-api/internal/infrastructure/storage"
	"github.com/jhoicas/distribuidora-api/pkg/config"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// env estado compartido por los subcomandos, se abre en PersistentPreRunE.
type env struct {
	log   *logger.Logger
	store *storage.Storage
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}
	var verbose bool

	root := &cobra.Command{
		Use:           "admin",
		Short:         "Herramientas de administración de Distribuidora Martín",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			level := "warn"
			if verbose {
				level = "debug"
			}
			e.log = logger.New(logger.Config{Env: "development", Level: level, Output: cmd.ErrOrStderr()})

			// migrate aplica el esquema explícitamente
			dbCfg := cfg.DB
			dbCfg.AutoMigrate = false
			e.store, err = storage.Open(cmd.Context(), dbCfg, e.log)
			return err
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if e.store != nil {
				e.store.Close()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log detallado")

	root.AddCommand(
		newMigrateCmd(e),
		newCreateUserCmd(e),
		newStockCmd(e),
		newImportProductsCmd(e),
	)
	return root
}
