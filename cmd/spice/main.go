package main

import (
	"os"

	"github.com/SDSMT-Capstone-Spice-GUI-Team/Spice-GUI-sub002/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
