// cmd/fichero/cmd/ficha/search.go
package ficha

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "buscar <nombre de técnica>",
	Short: "Buscar fichas por nombre de técnica",
	Long: `Busca fichas cuyo nombre de técnica coincida exactamente con el
indicado, sin distinguir mayúsculas ni espacios alrededor.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		matches := app.Fichas.FindByTechniqueName(cmd.Context(), args[0])
		if len(matches) == 0 {
			fmt.Printf("No se encontraron fichas para %q.\n", args[0])
			return nil
		}

		for _, f := range matches {
			fmt.Printf("── Ficha %d ─────────────────\n", f.ID)
			fmt.Printf("Técnica:     %s\n", f.TechniqueName)
			fmt.Printf("Doctor:      %s\n", f.Doctor)
			fmt.Printf("Descripción: %s\n", f.Description)
			fmt.Printf("Materiales:  %s\n", f.Materials)
		}
		return nil
	},
}
