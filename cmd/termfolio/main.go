package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// Exit codes for different failure modes
const (
	ExitSuccess = 0
	ExitError   = 2 // Configuration or runtime error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
