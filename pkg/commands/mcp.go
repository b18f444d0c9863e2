package commands

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/rangepick/pkg/runner/mcp"
	"tableflip.dev/rangepick/pkg/store"
)

func addMCP(topLevel *cobra.Command) {
	r := mcp.Runner{Name: "rangepick"}
	transport := string(mcp.TransportStdio)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "serve trips and calendars over the Model Context Protocol",
		Example: `
rangepick mcp
rangepick mcp --transport http --addr 127.0.0.1:8080
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			r.Config = cfg
			r.Persistence = p
			r.Transport = mcp.Transport(transport)
			r.OnHTTPListening = func(addr net.Addr) {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP listening on http://%s%s\n", addr, r.HTTPEndpointPath)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			return r.Do(ctx)
		},
	}
	cmd.Flags().StringVar(&transport, "transport", transport, "Transport to serve on, one of 'stdio' or 'http'.")
	cmd.Flags().StringVar(&r.HTTPListenAddr, "addr", "127.0.0.1:8080", "Listen address for the http transport.")
	cmd.Flags().StringVar(&r.HTTPEndpointPath, "path", "/mcp", "Endpoint path for the http transport.")
	cmd.Flags().StringVar(&r.HTTPServerCert, "tls-cert", "", "TLS certificate for the http transport.")
	cmd.Flags().StringVar(&r.HTTPServerKey, "tls-key", "", "TLS key for the http transport.")

	topLevel.AddCommand(cmd)
}
