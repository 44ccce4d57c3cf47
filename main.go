package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gitCabezas/PontoJovem/internal/cmd"
)

func main() {
	if err := cmd.Run(context.Background(), os.Args[1:]...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
