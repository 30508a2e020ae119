package cmd

import (
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/web/server"
	"github.com/urfave/cli"
)

// Serve the browser viewer that streams progressive renders.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	srv := server.NewServer(ctx.Int("port"), log.New("web"))
	logger.Noticef("serving progressive renders on http://localhost:%d", ctx.Int("port"))
	return srv.Start()
}
