// cmd/fichero/cmd/pago/paid.go
package pago

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var paidAmount float64

var paidCmd = &cobra.Command{
	Use:   "pagar <id>",
	Short: "Marcar un pago como pagado",
	Long: `Marca el pago como pagado con fecha de hoy. Si el pago no tiene
monto hay que indicarlo con --monto; un monto ya registrado nunca cambia.`,
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

		var amount *float64
		if cmd.Flags().Changed("monto") {
			amount = &paidAmount
		}

		paid, err := app.Pagos.MarkPaid(cmd.Context(), id, amount)
		if err != nil {
			return err
		}

		// Legacy paid payments may still lack amount or date.
		amountText := "-"
		if paid.Amount != nil {
			amountText = formatAmount(*paid.Amount)
		}
		dateText := "-"
		if paid.PaymentDate != nil {
			dateText = paid.PaymentDate.Format("02/01/2006")
		}
		color.Green("✅ Pago %d marcado como pagado: %s el %s.", paid.ID, amountText, dateText)
		return nil
	},
}

func init() {
	paidCmd.Flags().Float64VarP(&paidAmount, "monto", "m", 0, "Monto, si el pago no tiene uno registrado")
}
