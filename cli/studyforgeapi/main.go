package main

import (
	"os"

	apicmder "github.com/studyforgeco/studyforge/cmd/studyforge/serve/api"
)

func main() {
	cmd := apicmder.NewAPICmd()
	cmd.Use = "studyforgeapi"
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Override path to .studyforge/ config directory")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
