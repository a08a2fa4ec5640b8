package main

import (
	"os"
	"path/filepath"

	"alebedev/statement-parser/cmd/categorize"
	"alebedev/statement-parser/cmd/detect"
	ocrcmd "alebedev/statement-parser/cmd/ocr"
	"alebedev/statement-parser/cmd/parse"
	"alebedev/statement-parser/cmd/root"

	"github.com/joho/godotenv"
)

func init() {
	loadEnvSilently()

	root.Init()
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(detect.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(ocrcmd.Cmd)
}

// loadEnvSilently loads .env from the working directory or the project
// root without logging; config.Load picks the values up from the
// environment afterwards.
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
