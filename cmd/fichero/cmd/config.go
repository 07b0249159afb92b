// cmd/fichero/cmd/config.go
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fichero/internal/app/client"
)

var (
	configFontSize string
	configDarkMode bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Ver o cambiar las preferencias de la aplicación",
	RunE: func(cmd *cobra.Command, args []string) error {
		changed := false

		if cmd.Flags().Changed("letra") {
			if err := app.Prefs.SetFontSize(cmd.Context(), client.FontSize(configFontSize)); err != nil {
				return err
			}
			changed = true
		}
		if cmd.Flags().Changed("modo-oscuro") {
			if err := app.Prefs.SetDarkMode(cmd.Context(), configDarkMode); err != nil {
				return err
			}
			changed = true
		}

		if changed {
			color.Green("✅ Preferencias guardadas.")
		}
		fmt.Printf("Tamaño de letra: %s\n", app.Prefs.FontSize())
		fmt.Printf("Modo oscuro:     %t\n", app.Prefs.DarkMode())
		fmt.Printf("Datos:           %s\n", cfg.DataPath)
		fmt.Printf("Exportaciones:   %s\n", cfg.ExportDir)
		return nil
	},
}

func init() {
	configCmd.Flags().StringVar(&configFontSize, "letra", "", "Tamaño de letra (pequeño|mediano|grande)")
	configCmd.Flags().BoolVar(&configDarkMode, "modo-oscuro", false, "Activar o desactivar el modo oscuro")
}
