package main

import (
	"fmt"

	hnhttp "github.com/user/hnfeed/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "listening on %s\n", c.Addr)

	server := hnhttp.NewServer(c.Addr, deps.Service, deps.Logger)
	return server.ListenAndServe(deps.Ctx)
}
