package main

import (
	"encoding/json"
	"fmt"

	"github.com/user/hnfeed"
)

// Run executes the posts command.
func (c *PostsCmd) Run(deps *Dependencies) error {
	posts, err := deps.Service.Posts(deps.Ctx, c.Page)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", hnfeed.ErrorMessage(err))
		return err
	}

	summaries := make([]hnfeed.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, p.Summary())
	}

	out, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
