package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// BuildInfo is stamped into the binary by ldflags.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewRootCommand builds the portal command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "app-portal",
		Short: "Employee application portal",
		Long: `app-portal serves the employee login page, issues session cookies and lists
the internal applications each employee is permitted to open.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(info),
		newMigrateCommand(),
		newVersionCommand(info),
	)

	return root
}

// ExecuteContext runs the command tree with ctx.
func ExecuteContext(ctx context.Context, info BuildInfo) error {
	return NewRootCommand(info).ExecuteContext(ctx)
}
