// cmd/fichero/cmd/ficha/list.go
package ficha

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fichero/internal/domain/ficha"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:     "listar",
	Aliases: []string{"list"},
	Short:   "Listar todas las fichas",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		fichas := app.Fichas.LoadAll(cmd.Context())

		switch listFormat {
		case "json":
			return printFichasJSON(fichas)
		default:
			return printFichasTable(fichas)
		}
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "formato", "f", "tabla", "Formato de salida (tabla|json)")
}

func printFichasJSON(fichas []ficha.Ficha) error {
	blob, err := json.MarshalIndent(fichas, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(blob))
	return nil
}

func printFichasTable(fichas []ficha.Ficha) error {
	if len(fichas) == 0 {
		fmt.Println("No hay fichas guardadas.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTÉCNICA\tDOCTOR\tMATERIALES")
	for _, f := range fichas {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", f.ID, f.TechniqueName, f.Doctor, f.Materials)
	}
	return w.Flush()
}
