package main

import (
	"fichero/cmd/fichero/cmd"
)

func main() {
	cmd.Execute()
}
