package main

import (
	"crowdfund/cmd"
	"fmt"
	"os"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "crowdfund: %s\n", err)
		os.Exit(1)
	}
}
