package main

import (
	"os"

	"github.com/atozbatur/vtt-timecode-processor/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
