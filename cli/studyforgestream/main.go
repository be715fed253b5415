package main

import (
	"fmt"
	"os"

	streamcmder "github.com/studyforgeco/studyforge/cmd/studyforge/serve/stream"
)

func main() {
	cmd := streamcmder.NewStreamCmd()

	cmd.Use = "studyforgestream"
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override path to .studyforge/ config directory")

	err := cmd.Execute()
	if err != nil {
		fmt.Printf("Error executing root command: %v\n", err)
		os.Exit(1)
	}
}
