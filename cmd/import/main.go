// Command import runs local résumé files through the import pipeline and
// prints the merged résumé as JSON.
//
//	go run ./cmd/import cv.pdf photo.png --base draft.json
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
