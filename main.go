package main

import (
	"fmt"
	"os"

	"github.com/Nusri7/sopcalc/cmd"
)

var version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("sopcalc version %s\n", version)
		os.Exit(0)
	}

	cmd.Execute()
}
