package probes

import (
	"context"
	"os"
	"time"

	"github.com/sl1tools/sl1probe/internal/config"
	"github.com/sl1tools/sl1probe/internal/graphql"
	"github.com/sl1tools/sl1probe/internal/logging"
	"github.com/sl1tools/sl1probe/internal/report"
	"github.com/sl1tools/sl1probe/pkg/probes/devices"
)

type ISuite interface {
	Name() string
	Run(ctx context.Context) error
}

// Run executes every probe suite in order against the configured endpoint
// and flushes the collected findings to stdout. Suites run strictly
// sequentially; a failed probe is a finding, never a reason to stop.
func Run(
	ctx context.Context,
	cfg *config.Config,
) error {

	logger := logging.NewLogger(cfg.LogLevel)
	gqlc := graphql.NewGraphQlClient(
		logger,
		cfg.Endpoint,
		cfg.Username,
		cfg.Password,
		cfg.InsecureSkipVerify,
		time.Duration(cfg.TimeoutSeconds)*time.Second,
	)
	reporter := report.NewReporter(os.Stdout)

	suites := []ISuite{
		devices.NewShapesSuite(logger, gqlc, reporter),
		devices.NewFieldsSuite(logger, gqlc, reporter),
		devices.NewWorkingSuite(logger, gqlc, reporter),
	}

	for _, suite := range suites {
		_ = suite.Run(ctx)
	}

	return reporter.Flush()
}
