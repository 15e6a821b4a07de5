package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/configurador-api/pkg/config"
	"github.com/jhoicas/configurador-api/pkg/logger"
)

var (
	cfg      *config.Config
	useMem   bool
	logLevel string
)

// Execute construye el árbol de comandos y lo ejecuta.
func Execute() error {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Herramientas de operación del configurador de productos",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if useMem {
				loaded.App.Store = "memory"
			}
			if logLevel == "" {
				logLevel = loaded.App.LogLevel
			}
			// stdout queda para el volcado
			logger.New(logger.Config{Env: loaded.App.Env, Level: logLevel, Out: os.Stderr})
			cfg = loaded
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&useMem, "memory", false, "usar la semilla embebida en lugar de PostgreSQL")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "nivel de log (por defecto LOG_LEVEL)")

	root.AddCommand(exportCmd(), tokenCmd())
	return root.Execute()
}
