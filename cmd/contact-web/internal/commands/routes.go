package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/MGTheTrain/contact-web/internal/api/web"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// sampleURL is printed below the route table
type sampleURL struct {
	route  string
	params map[string]string
}

var sampleURLs = []sampleURL{
	{route: web.RouteIndex},
	{route: web.RouteHello, params: map[string]string{"name": "world"}},
	{route: web.RouteShowName, params: map[string]string{"name": "ichiro", "page": "1"}},
	{route: web.RouteStatic, params: map[string]string{"filepath": "style.css"}},
}

// InitRoutesCommand registers the routes command
func InitRoutesCommand(rootCmd *cobra.Command) {
	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "List the named routes and a few generated URLs",
		RunE:  runRoutes,
	}
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)

	// Handlers are never invoked, so no services are needed to list the routes
	r, urls, err := web.NewEngine(cfg, log)
	if err != nil {
		return err
	}
	if err := web.SetupRoutes(r, urls, nil, nil, log); err != nil {
		return err
	}

	out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(out, "NAME\tMETHOD\tPATTERN")
	for _, route := range urls.Routes() {
		fmt.Fprintf(out, "%s\t%s\t%s\n", route.Name, route.Method, route.Pattern)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write routes: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	for _, sample := range sampleURLs {
		u, err := urls.URLFor(sample.route, sample.params)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
	}

	return nil
}
