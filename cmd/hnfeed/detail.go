package main

import (
	"encoding/json"
	"fmt"

	"github.com/user/hnfeed"
)

// Run executes the detail command.
func (c *DetailCmd) Run(deps *Dependencies) error {
	post, err := deps.Service.Detail(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hnfeed.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(post.Detail(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
