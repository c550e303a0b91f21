package devices

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/sl1tools/sl1probe/internal/graphql"
	"github.com/sl1tools/sl1probe/internal/logging"
	"github.com/sl1tools/sl1probe/internal/report"
)

// FieldsSuite narrows down which subfields deviceClass and organization
// accept, and whether search takes the structured filter object.
type FieldsSuite struct {
	Logger   logging.ILogger
	Gqlc     graphql.IGraphQlClient
	Reporter report.IReporter
}

func NewFieldsSuite(
	logger logging.ILogger,
	gqlc graphql.IGraphQlClient,
	reporter report.IReporter,
) *FieldsSuite {
	return &FieldsSuite{
		Logger:   logger,
		Gqlc:     gqlc,
		Reporter: reporter,
	}
}

func (s *FieldsSuite) Name() string {
	return "device field availability"
}

func (s *FieldsSuite) Run(
	ctx context.Context,
) error {

	s.Logger.LogWithFields(logrus.DebugLevel, PROBES_RUNNING_SUITE,
		map[string]string{
			"suite": s.Name(),
		})

	runCases(ctx, s.Logger, s.Gqlc, s.Reporter, s.cases())
	return nil
}

func (s *FieldsSuite) cases() []probeCase {
	return []probeCase{
		{
			name:   "deviceClass with id",
			fields: []string{"id", "name", "deviceClass { id }"},
			opts:   graphql.DeviceQueryOptions{First: 1},
		},
		{
			name:   "organization with id",
			fields: []string{"id", "name", "organization { id }"},
			opts:   graphql.DeviceQueryOptions{First: 1},
		},
		{
			name:   "search with DeviceSearch object",
			fields: []string{"id", "name"},
			opts: graphql.DeviceQueryOptions{
				First:       2,
				Search:      "SELAB",
				SearchShape: graphql.SearchFiltered,
			},
		},
		{
			name: "Complete working query",
			fields: []string{
				"id",
				"name",
				"ip",
				"state",
				"deviceClass { id }",
				"organization { id }",
			},
			opts: graphql.DeviceQueryOptions{First: 3, WithPageInfo: true},
		},
	}
}
