package main

import (
	"context"
	"os"
	"time"

	"github.com/shandysiswandi/formguard/internal/app"
	"github.com/shandysiswandi/formguard/internal/formguard/inbound"
)

func main() {
	application, err := app.New(inbound.IO{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr})
	if err != nil {
		os.Exit(inbound.ExitUsage)
	}

	code := application.Run(context.Background(), os.Args[1:]) // Validate one field record

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	application.Stop(ctx) // Release resources before exiting
	cancel()

	os.Exit(code)
}
