// cmd/fichero/cmd/pago/create.go
package pago

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fichero/internal/domain/pago"
)

var (
	createFichaID   int64
	createTechnique string
	createDoctor    string
	createSource    string
	createAmount    float64
	createNotes     string
)

var createCmd = &cobra.Command{
	Use:     "agregar",
	Aliases: []string{"add"},
	Short:   "Registrar un pago para una ficha",
	Long: `Registra un pago pendiente asociado a una ficha, indicada por id
(--ficha) o por nombre de técnica (--tecnica). Los pagos de paciente
requieren monto; los de clínica pueden recibirlo al marcarse pagados.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		fichaID := createFichaID
		if fichaID == 0 && createTechnique != "" {
			f := app.Fichas.GetByTechniqueName(cmd.Context(), createTechnique)
			if f == nil {
				return fmt.Errorf("no existe una ficha para la técnica %q", createTechnique)
			}
			fichaID = f.ID
		}
		if fichaID == 0 {
			return fmt.Errorf("debe indicar la ficha con --ficha o --tecnica")
		}
		if app.Fichas.GetByID(cmd.Context(), fichaID) == nil {
			return fmt.Errorf("no existe una ficha con id %d", fichaID)
		}

		p := pago.Pago{
			ID:      time.Now().UnixMilli(),
			FichaID: fichaID,
			Doctor:  createDoctor,
			Source:  pago.Source(createSource),
			Status:  pago.StatusPending,
			Notes:   createNotes,
		}
		if cmd.Flags().Changed("monto") {
			p.Amount = &createAmount
		}

		if err := app.Pagos.Add(cmd.Context(), p); err != nil {
			return err
		}

		color.Green("✅ Pago %d registrado como pendiente.", p.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().Int64Var(&createFichaID, "ficha", 0, "Id de la ficha")
	createCmd.Flags().StringVarP(&createTechnique, "tecnica", "t", "", "Nombre de la técnica (primera coincidencia)")
	createCmd.Flags().StringVarP(&createDoctor, "doctor", "d", "", "Doctor que realizó la cirugía")
	createCmd.Flags().StringVarP(&createSource, "fuente", "f", "", "Origen del pago (patient|clinic)")
	createCmd.Flags().Float64VarP(&createAmount, "monto", "m", 0, "Monto del pago")
	createCmd.Flags().StringVarP(&createNotes, "notas", "n", "", "Notas")

	createCmd.MarkFlagRequired("doctor")
	createCmd.MarkFlagRequired("fuente")
}
