package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	dochttp "github.com/fwojciec/docserve/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := dochttp.NewServer()
	if err != nil {
		return err
	}
	srv.Addr = c.Addr
	srv.Documents = deps.Documents
	srv.Searcher = deps.Searcher
	srv.Renderer = deps.Renderer
	srv.Tree = deps.Tree
	srv.Logger = deps.Logger

	if err := srv.Open(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Serving documentation at %s\n", srv.URL())

	<-ctx.Done()
	return srv.Close()
}
