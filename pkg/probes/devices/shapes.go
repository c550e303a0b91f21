package devices

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/sl1tools/sl1probe/internal/graphql"
	"github.com/sl1tools/sl1probe/internal/logging"
	"github.com/sl1tools/sl1probe/internal/report"
)

// ShapesSuite tries the basic device query shapes: plain node fields,
// nested selections, pagination info and the plain-string search argument.
type ShapesSuite struct {
	Logger   logging.ILogger
	Gqlc     graphql.IGraphQlClient
	Reporter report.IReporter
}

func NewShapesSuite(
	logger logging.ILogger,
	gqlc graphql.IGraphQlClient,
	reporter report.IReporter,
) *ShapesSuite {
	return &ShapesSuite{
		Logger:   logger,
		Gqlc:     gqlc,
		Reporter: reporter,
	}
}

func (s *ShapesSuite) Name() string {
	return "device query shapes"
}

func (s *ShapesSuite) Run(
	ctx context.Context,
) error {

	s.Logger.LogWithFields(logrus.DebugLevel, PROBES_RUNNING_SUITE,
		map[string]string{
			"suite": s.Name(),
		})

	runCases(ctx, s.Logger, s.Gqlc, s.Reporter, s.cases())
	return nil
}

func (s *ShapesSuite) cases() []probeCase {
	return []probeCase{
		{
			name:   "Basic devices",
			fields: []string{"id", "name"},
			opts:   graphql.DeviceQueryOptions{First: 2},
		},
		{
			name:   "Devices with state",
			fields: []string{"id", "name", "ip", "state"},
			opts:   graphql.DeviceQueryOptions{First: 2},
		},
		{
			name:   "Devices with deviceClass",
			fields: []string{"id", "name", "deviceClass { name }"},
			opts:   graphql.DeviceQueryOptions{First: 2},
		},
		{
			name:   "Devices with organization",
			fields: []string{"id", "name", "organization { name }"},
			opts:   graphql.DeviceQueryOptions{First: 2},
		},
		{
			name:   "Devices with pagination",
			fields: []string{"id", "name"},
			opts:   graphql.DeviceQueryOptions{First: 2, WithPageInfo: true},
		},
		{
			name:   "Devices with search",
			fields: []string{"id", "name"},
			opts: graphql.DeviceQueryOptions{
				First:       2,
				Search:      "server",
				SearchShape: graphql.SearchString,
			},
		},
	}
}
