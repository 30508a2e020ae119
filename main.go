package main

import (
	"os"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/df07/go-pathtracer/pkg/log"
)

func main() {
	app := cmd.NewApp()
	if err := app.Run(os.Args); err != nil {
		log.New("pathtracer").Errorf("%v", err)
		os.Exit(1)
	}
}
