package main

import (
	"context"
	"os"

	"github.com/uhk16/layout-parser-processor/internal/app"
	"github.com/uhk16/layout-parser-processor/internal/config"
)

func main() {
	app.Run(context.Background(), config.EnvProvider{}, os.Args[1:])
}
