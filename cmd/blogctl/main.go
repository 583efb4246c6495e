package main

import (
	"os"

	"blog-store/cmd/blogctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
