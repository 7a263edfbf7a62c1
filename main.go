package main

import (
	"os"

	"github.com/sam/aiquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
