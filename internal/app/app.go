package app

import (
	"context"
	"fmt"

	"cloud.google.com/go/documentai/apiv1/documentaipb"

	"github.com/uhk16/layout-parser-processor/internal/config"
	"github.com/uhk16/layout-parser-processor/internal/core/docai"
	"github.com/uhk16/layout-parser-processor/internal/core/mimetype"
	"github.com/uhk16/layout-parser-processor/internal/core/picker"
)

// processor is the slice of the docai client the flow drives.
type processor interface {
	Process(ctx context.Context, filePath, mimeType string) (*documentaipb.Document, error)
	Close() error
}

// clientFactory builds the processing client once a file has actually
// been chosen.
type clientFactory func(ctx context.Context, cfg *config.Config) (processor, error)

// Run drives one extraction: resolve configuration, choose a file, send
// it to the processor, print the extracted text. Every outcome is
// reported on stdout and the caller exits normally either way.
func Run(ctx context.Context, provider config.Provider, args []string) {
	run(ctx, provider, args, picker.Pick, newDocaiClient)
}

func newDocaiClient(ctx context.Context, cfg *config.Config) (processor, error) {
	return docai.NewClient(ctx, cfg)
}

// run sequences the flow with the file chooser and client factory
// supplied by the caller.
func run(ctx context.Context, provider config.Provider, args []string, pick func() (string, error), newClient clientFactory) {
	cfg, err := provider.Resolve()
	if err != nil {
		fmt.Println("Configuration error:", err)
		return
	}

	filePath, err := chooseFile(args, pick)
	if err != nil {
		fmt.Println("File selection error:", err)
		return
	}
	if filePath == "" {
		fmt.Println("No file selected.")
		return
	}

	mimeType := mimetype.Resolve(filePath)
	fmt.Printf("Processing %s (%s)\n", filePath, mimeType)

	client, err := newClient(ctx, cfg)
	if err != nil {
		fmt.Println("Error processing document:", err)
		return
	}
	defer client.Close()

	doc, err := client.Process(ctx, filePath, mimeType)
	if err != nil {
		fmt.Println("Error processing document:", err)
		return
	}

	fmt.Println(docai.ExtractText(doc))
}

// chooseFile takes the first command-line argument when one is given,
// otherwise asks the chooser.
func chooseFile(args []string, pick func() (string, error)) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	return pick()
}
