package devices

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/sl1tools/sl1probe/internal/graphql"
	"github.com/sl1tools/sl1probe/internal/logging"
	"github.com/sl1tools/sl1probe/internal/report"
)

// The query confirmed to work against SL1, parameterized with variables
// instead of inlined arguments.
const getDevicesQuery = `query GetDevices($limit: Int!) {
  devices(first: $limit) {
    edges {
      node {
        id
        name
        ip
        state
        deviceClass {
          id
        }
        organization {
          id
        }
      }
    }
    pageInfo {
      hasNextPage
    }
  }
}`

const searchDevicesQuery = `query SearchDevices($searchTerm: String!, $limit: Int!) {
  devices(
    search: {name: {contains: $searchTerm}}
    first: $limit
  ) {
    edges {
      node {
        id
        name
        ip
        state
      }
    }
  }
}`

const deviceLimit = 5

// WorkingSuite runs the two confirmed query documents with variables and
// decodes the device connection from the response.
type WorkingSuite struct {
	Logger   logging.ILogger
	Gqlc     graphql.IGraphQlClient
	Reporter report.IReporter
}

func NewWorkingSuite(
	logger logging.ILogger,
	gqlc graphql.IGraphQlClient,
	reporter report.IReporter,
) *WorkingSuite {
	return &WorkingSuite{
		Logger:   logger,
		Gqlc:     gqlc,
		Reporter: reporter,
	}
}

func (s *WorkingSuite) Name() string {
	return "working queries"
}

func (s *WorkingSuite) Run(
	ctx context.Context,
) error {

	s.Logger.LogWithFields(logrus.DebugLevel, PROBES_RUNNING_SUITE,
		map[string]string{
			"suite": s.Name(),
		})

	// Fetch the devices per GraphQL. A decode failure is a finding about
	// the schema, not a reason to stop probing.
	devices, err := s.fetchDevices(ctx)
	if err == nil && devices != nil {
		s.Logger.LogWithFields(logrus.DebugLevel, PROBES_DEVICES_FETCHED_SUCCESSFULLY,
			map[string]string{
				"numDevices":  strconv.Itoa(len(devices.Nodes())),
				"hasNextPage": strconv.FormatBool(devices.HasNextPage()),
			})
	}

	runProbe(ctx, s.Logger, s.Gqlc, s.Reporter,
		"Working search query", searchDevicesQuery,
		map[string]any{
			"searchTerm": "SELAB",
			"limit":      deviceLimit,
		})

	return nil
}

func (s *WorkingSuite) fetchDevices(
	ctx context.Context,
) (
	*graphql.DeviceConnectionData[DeviceNode],
	error,
) {

	result := runProbe(ctx, s.Logger, s.Gqlc, s.Reporter,
		"Working lambda query", getDevicesQuery,
		map[string]any{
			"limit": deviceLimit,
		})
	if result == nil || !result.HasData() {
		return nil, nil
	}

	devices, err := graphql.UnmarshalData[graphql.DeviceConnectionData[DeviceNode]](result)
	if err != nil {
		s.Logger.Log(logrus.ErrorLevel, PROBES_DECODING_DEVICES_HAS_FAILED)
		return nil, err
	}
	return devices, nil
}
