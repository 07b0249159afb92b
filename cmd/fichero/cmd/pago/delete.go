// cmd/fichero/cmd/pago/delete.go
package pago

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
	Short:   "Eliminar un pago",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("id inválido: %q", args[0])
		}

		if !deleteForce && !confirm(fmt.Sprintf("¿Eliminar el pago %d?", id)) {
			color.Red("Pago no eliminado.")
			return nil
		}

		if err := app.Pagos.Delete(cmd.Context(), id); err != nil {
			return err
		}

		color.Green("✅ Pago %d eliminado.", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteForce, "si", false, "No pedir confirmación")
}
