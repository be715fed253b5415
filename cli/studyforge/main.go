package main

import (
	"os"

	studyforgecmder "github.com/studyforgeco/studyforge/cmd/studyforge"
)

func main() {
	cmd := studyforgecmder.NewStudyforgeCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
