// Command contentctl inspects and loads site content from the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
