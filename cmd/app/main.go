package main

import (
	"github.com/meulencv/wenomadus/internal/app"
	"github.com/meulencv/wenomadus/internal/config"
	"github.com/meulencv/wenomadus/pkg/logging"
)

func main() {
	logging.Setup()
	app.Go(config.Load())
}
