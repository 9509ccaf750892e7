package main

import (
	"os"

	"github.com/out-of-cheese-error/go-hypothesis/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
