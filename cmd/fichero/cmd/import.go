// cmd/fichero/cmd/import.go
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var importForce bool

var importCmd = &cobra.Command{
	Use:   "importar <archivo.json>",
	Short: "Importar fichas desde un archivo JSON",
	Long: `Reemplaza TODAS las fichas guardadas por las del archivo indicado.
Las entradas incompletas o mal formadas se completan con valores por
defecto marcados para revisión; nada se mezcla con lo existente.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !importForce {
			color.Yellow("⚠️  La importación reemplaza todas las fichas existentes.")
			fmt.Print("¿Continuar? [s/N]: ")
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "s" && answer != "si" && answer != "sí" {
				color.Red("Importación cancelada.")
				return nil
			}
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("no se pudo leer el archivo: %w", err)
		}

		result, err := app.Transfer.Import(cmd.Context(), data)
		if err != nil {
			return err
		}

		color.Green("⬇️  %d ficha(s) importada(s).", result.Total)
		if result.Defaulted > 0 {
			color.Yellow("⚠️  %d ficha(s) necesitaron valores por defecto; revíselas y complételas.", result.Defaulted)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importForce, "si", false, "No pedir confirmación")
}
