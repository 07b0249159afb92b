// cmd/fichero/cmd/ficha/edit.go
package ficha

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	editTechnique   string
	editDoctor      string
	editDescription string
	editMaterials   string
)

var editCmd = &cobra.Command{
	Use:     "editar <id>",
	Aliases: []string{"edit"},
	Short:   "Editar una ficha por id",
	Long: `Edita la ficha con el id indicado. Solo se modifican los campos
pasados por flag; el resto conserva su valor.`,
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
			return fmt.Errorf("no existe una ficha con id %d", id)
		}

		edited := *existing
		if cmd.Flags().Changed("tecnica") {
			edited.TechniqueName = editTechnique
		}
		if cmd.Flags().Changed("doctor") {
			edited.Doctor = editDoctor
		}
		if cmd.Flags().Changed("descripcion") {
			edited.Description = editDescription
		}
		if cmd.Flags().Changed("materiales") {
			edited.Materials = editMaterials
		}

		if err := app.Fichas.EditByID(cmd.Context(), id, edited); err != nil {
			return err
		}

		color.Green("✅ Ficha %d actualizada.", id)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editTechnique, "tecnica", "t", "", "Nuevo nombre de la técnica")
	editCmd.Flags().StringVarP(&editDoctor, "doctor", "d", "", "Nuevo doctor")
	editCmd.Flags().StringVarP(&editDescription, "descripcion", "D", "", "Nueva descripción")
	editCmd.Flags().StringVarP(&editMaterials, "materiales", "m", "", "Nuevos materiales")
}
