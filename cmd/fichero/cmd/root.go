// cmd/fichero/cmd/root.go
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"fichero/cmd/fichero/cmd/ficha"
	"fichero/cmd/fichero/cmd/pago"
	"fichero/internal/app/client"
	"fichero/internal/app/client/config"
	"fichero/internal/utils/logger"
)

var (
	cfg *config.Config
	log *slog.Logger
	app *client.App
)

var rootCmd = &cobra.Command{
	Use:   "fichero",
	Short: "Fichero - fichas de técnicas quirúrgicas y control de pagos",
	Long: `Fichero es una aplicación local para llevar fichas de técnicas
quirúrgicas (técnica, doctor, descripción, materiales) y los pagos
asociados a cada una, pendientes o pagados, organizados por mes.

Todos los datos se guardan en el dispositivo; no hay servidor ni
sincronización.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()
	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("error al inicializar la aplicación: %w", err)
	}

	cmd.SetContext(client.NewContext(cmd.Context(), app))
	return nil
}

func init() {
	rootCmd.AddCommand(ficha.Cmd)
	rootCmd.AddCommand(pago.Cmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(configCmd)
}
