package main

import (
	"context"

	"github.com/haguru/oak/config"
	"github.com/haguru/oak/internal/app"
)

func main() {
	// create and initialize the app
	oak, err := app.NewApp(config.CONFIG_PATH)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = oak.Close(context.Background())
	}()

	// run the app: starts the server and blocks serving requests
	if err := oak.Run(); err != nil {
		panic(err)
	}
}
