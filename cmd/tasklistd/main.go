package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCommand creates the root cobra command.
func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tasklistd",
		Short: "A multi-user task list API server",
		Long: `tasklistd serves a task list HTTP API backed by SQLite, with GitHub
OAuth for identity.

CONFIGURATION:
  Configuration follows this priority order: environment variables > config file > defaults

  Server:
    TASKLIST_SERVER_ADDR                 Listen address (default: :3333)
    TASKLIST_SERVER_READ_TIMEOUT         Read timeout (default: 10s)
    TASKLIST_SERVER_WRITE_TIMEOUT        Write timeout (default: 10s)
    TASKLIST_SERVER_SHUTDOWN_TIMEOUT     Shutdown timeout (default: 30s)

  Database:
    TASKLIST_DB_DIR                      Database directory (default: ~/.tasklist)
    TASKLIST_DB_FILENAME                 Database filename (default: tasklist.db)
    TASKLIST_DB_QUERY_TIMEOUT            Query timeout (default: 10s)

  Auth:
    TASKLIST_GITHUB_CLIENT_ID            GitHub OAuth app client ID
    TASKLIST_GITHUB_CLIENT_SECRET        GitHub OAuth app client secret
    TASKLIST_SESSION_SECRET              Session token signing secret
    TASKLIST_SESSION_TTL                 Session token lifetime (default: 168h)

  Logging:
    TASKLIST_LOG_LEVEL                   debug, info, warn or error (default: info)
    TASKLIST_LOG_FORMAT                  text, json or logfmt (default: text)

  TASKLIST_CONFIG points at a TOML config file with the same settings.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.AddCommand(newServeCommand())
	return root
}

// newServeCommand creates the serve subcommand. Running the bare root
// command does the same thing; the subcommand exists for explicitness.
func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the task list API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}
