// cmd/fichero/cmd/ficha/create.go
package ficha

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fichero/internal/domain/ficha"
)

var (
	createTechnique   string
	createDoctor      string
	createDescription string
	createMaterials   string
	createForce       bool
)

var createCmd = &cobra.Command{
	Use:   "crear",
	Short: "Crear una nueva ficha",
	Long: `Crea una ficha de técnica quirúrgica. Todos los campos son
obligatorios. Si ya existe una ficha con el mismo nombre de técnica se
pide confirmación antes de agregar un duplicado.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		f, err := ficha.New(createTechnique, createDoctor, createDescription, createMaterials)
		if err != nil {
			return err
		}

		if app.Fichas.ExistsByTechniqueName(cmd.Context(), f.TechniqueName) {
			existing := app.Fichas.GetByTechniqueName(cmd.Context(), f.TechniqueName)
			color.Yellow("⚠️  Ya existe una ficha para %q (doctor: %s).", existing.TechniqueName, existing.Doctor)
			if !createForce && !confirm("¿Agregar de todos modos?") {
				color.Red("Ficha no agregada.")
				return nil
			}
		}

		if err := app.Fichas.Add(cmd.Context(), *f); err != nil {
			return err
		}

		color.Green("✅ Ficha %d creada: %s", f.ID, f.TechniqueName)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createTechnique, "tecnica", "t", "", "Nombre de la técnica")
	createCmd.Flags().StringVarP(&createDoctor, "doctor", "d", "", "Doctor")
	createCmd.Flags().StringVarP(&createDescription, "descripcion", "D", "", "Descripción de la técnica")
	createCmd.Flags().StringVarP(&createMaterials, "materiales", "m", "", "Materiales utilizados")
	createCmd.Flags().BoolVar(&createForce, "si", false, "No pedir confirmación por nombres duplicados")

	createCmd.MarkFlagRequired("tecnica")
	createCmd.MarkFlagRequired("doctor")
	createCmd.MarkFlagRequired("descripcion")
	createCmd.MarkFlagRequired("materiales")
}
