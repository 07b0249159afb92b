// cmd/fichero/cmd/ficha/fichas.go
package ficha

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fichero/internal/app/client"
)

var Cmd = &cobra.Command{
	Use:     "ficha",
	Aliases: []string{"fichas"},
	Short:   "Gestión de fichas de técnicas quirúrgicas",
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(searchCmd)
	Cmd.AddCommand(editCmd)
	Cmd.AddCommand(deleteCmd)
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app := client.FromContext(cmd.Context())
	if app == nil {
		return nil, fmt.Errorf("aplicación no inicializada")
	}
	return app, nil
}

// confirm asks a yes/no question on stdin; only "s"/"si" accepts.
func confirm(question string) bool {
	fmt.Printf("%s [s/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "s" || answer == "si" || answer == "sí"
}
