// cmd/fichero/cmd/ficha/delete.go
package ficha

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "eliminar <id>",
	Aliases: []string{"delete"},
	Short:   "Eliminar una ficha por id",
	Long: `Elimina la ficha con el id indicado. Los pagos asociados NO se
eliminan; quedan huérfanos y dejan de mostrarse junto a una ficha.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id inválido: %q", args[0])
		}

		existing := app.Fichas.GetByID(cmd.Context(), id)
		if existing == nil {
			fmt.Printf("No existe una ficha con id %d.\n", id)
			return nil
		}

		linked := app.Pagos.GetManyByFichaIDs(cmd.Context(), []int64{id})
		if len(linked) > 0 {
			color.Yellow("⚠️  La ficha %q tiene %d pago(s) asociado(s) que quedarán huérfanos.",
				existing.TechniqueName, len(linked))
		}
		if !deleteForce && !confirm(fmt.Sprintf("¿Eliminar la ficha %q?", existing.TechniqueName)) {
			color.Red("Ficha no eliminada.")
			return nil
		}

		if err := app.Fichas.DeleteByID(cmd.Context(), id); err != nil {
			return err
		}

		color.Green("✅ Ficha %d eliminada.", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteForce, "si", false, "No pedir confirmación")
}
