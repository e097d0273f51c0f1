package main

import (
	"os"

	"github.com/abhisek/repertoire/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
