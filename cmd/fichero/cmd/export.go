// cmd/fichero/cmd/export.go
package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "exportar",
	Short: "Exportar todas las fichas a un archivo JSON",
	Long: `Escribe todas las fichas en un archivo JSON legible dentro del
directorio de exportación, listo para compartir o respaldar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, count, err := app.Transfer.Export(cmd.Context())
		if err != nil {
			color.Red("❌ No se pudieron exportar las fichas: %v", err)
			return nil
		}

		color.Green("⬆️  %d ficha(s) exportada(s) a %s", count, path)
		return nil
	},
}
