package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/openmesh-network/meshviz/internal/server"
	"github.com/openmesh-network/meshviz/pkg/observability"
)

type serveOpts struct {
	addr      string
	noCache   bool
	noMetrics bool
}

// serveCommand runs the interactive page and image API over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive visualization over HTTP",
		Long: `Serve the interactive page, the /scene.{format} image endpoints and
/resources. Prometheus metrics are exposed on /metrics unless disabled.`,
		Example: `  meshviz serve
  meshviz serve --addr 127.0.0.1:9000 --no-cache`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.addr == "" {
				opts.addr = c.cfg.Server.Addr
			}
			return c.runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.noMetrics, "no-metrics", false, "do not expose /metrics")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts serveOpts) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	srvOpts := []server.Option{
		server.WithDefaults(c.cfg.Defaults),
		server.WithLayout(c.cfg.Layout),
	}
	if !opts.noMetrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		prom := observability.NewPrometheusHooks(reg)
		observability.Register(prom)
		defer observability.Reset()
		srvOpts = append(srvOpts, server.WithMetrics(prom.Handler()))
	}

	if opts.noCache {
		printWarning("Artifact cache disabled; every request renders from scratch")
	}
	printInfo("Listening on %s", StyleLink.Render("http://"+displayAddr(opts.addr)))
	return server.New(runner, c.Logger, srvOpts...).ListenAndServe(ctx, opts.addr)
}

// displayAddr turns ":8080" into "localhost:8080" for printing.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
