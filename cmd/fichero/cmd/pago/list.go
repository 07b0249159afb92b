// cmd/fichero/cmd/pago/list.go
package pago

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"fichero/internal/domain/pago"
)

var (
	listMonth int
	listYear  int
)

var listCmd = &cobra.Command{
	Use:     "listar",
	Aliases: []string{"list"},
	Short:   "Ver los pagos de un mes",
	Long: `Muestra los pagos del mes indicado: los pagados en ese mes por su
fecha de pago, más todos los pendientes cuando el mes es el actual.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		now := time.Now()
		year, month := listYear, listMonth
		if year == 0 {
			year = now.Year()
		}
		if month == 0 {
			month = int(now.Month())
		}
		if month < 1 || month > 12 {
			return fmt.Errorf("mes inválido: %d", month)
		}

		pagos := app.Pagos.ListByMonth(cmd.Context(), year, time.Month(month))
		if len(pagos) == 0 {
			fmt.Printf("Sin pagos para %d/%d.\n", month, year)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tESTADO\tMONTO\tFECHA\tDOCTOR\tTÉCNICA")
		for _, p := range pagos {
			status := "⏳ pendiente"
			if p.Status == pago.StatusPaid {
				status = "✅ pagado"
			}
			amount := "-"
			if p.Amount != nil {
				amount = formatAmount(*p.Amount)
			}
			date := "-"
			if p.PaymentDate != nil {
				date = p.PaymentDate.Format("02/01/2006")
			}
			// Orphaned payments stay listed; they just lose their ficha name.
			technique := "(ficha eliminada)"
			if f := app.Fichas.GetByID(cmd.Context(), p.FichaID); f != nil {
				technique = f.TechniqueName
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", p.ID, status, amount, date, p.Doctor, technique)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().IntVar(&listMonth, "mes", 0, "Mes (1-12, por defecto el actual)")
	listCmd.Flags().IntVar(&listYear, "anio", 0, "Año (por defecto el actual)")
}
