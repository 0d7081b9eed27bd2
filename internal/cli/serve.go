package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/bruh/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Serve the BRUH tools over the Model Context Protocol. Requests are read
from stdin and responses written to stdout, one JSON-RPC message per line.
Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log.Info("MCP server starting", "version", a.build.Version, "commit", a.build.GitCommit)
			srv := server.New(a.cfg, a.build.Version)
			return srv.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
