package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fgaudin/file-gateway-go/internal/smoketest"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: smoketest <base-url>")
		os.Exit(1)
	}

	runner := smoketest.New(os.Args[1])
	if err := runner.Run(context.Background()); err != nil {
		os.Exit(1)
	}
}
