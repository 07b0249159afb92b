// cmd/fichero/cmd/pago/pagos.go
package pago

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"fichero/internal/app/client"
)

var Cmd = &cobra.Command{
	Use:     "pago",
	Aliases: []string{"pagos"},
	Short:   "Control de pagos asociados a fichas",
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(paidCmd)
	Cmd.AddCommand(deleteCmd)
}

func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app := client.FromContext(cmd.Context())
	if app == nil {
		return nil, fmt.Errorf("aplicación no inicializada")
	}
	return app, nil
}

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

func formatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
