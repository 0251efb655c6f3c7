package main

import (
	"os"

	"github.com/hroi/fraggen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
