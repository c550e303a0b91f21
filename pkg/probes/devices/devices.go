// Package devices probes the SL1 device connection: which node fields the
// schema exposes, which subfield selections it requires, and which shape of
// the search argument it accepts.
package devices

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/sl1tools/sl1probe/internal/graphql"
	"github.com/sl1tools/sl1probe/internal/logging"
	"github.com/sl1tools/sl1probe/internal/report"
)

// DeviceNode is the node selection shared by the device probes. Fields the
// probe did not ask for stay empty.
type DeviceNode struct {
	Id           string          `json:"id"`
	Name         string          `json:"name"`
	Ip           string          `json:"ip,omitempty"`
	State        json.RawMessage `json:"state,omitempty"`
	DeviceClass  *ObjectRef      `json:"deviceClass,omitempty"`
	Organization *ObjectRef      `json:"organization,omitempty"`
}

// ObjectRef is a referenced object selected by id and/or name.
type ObjectRef struct {
	Id   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type probeCase struct {
	name      string
	fields    []string
	opts      graphql.DeviceQueryOptions
	variables map[string]any
}

// runProbe sends one query and records the finding. A transport fault is
// logged and reported, never propagated; the suite moves on.
func runProbe(
	ctx context.Context,
	logger logging.ILogger,
	gqlc graphql.IGraphQlClient,
	reporter report.IReporter,
	name string,
	query string,
	variables map[string]any,
) *graphql.Result {

	logger.LogWithFields(logrus.DebugLevel, PROBES_EXECUTING_PROBE,
		map[string]string{
			"probe": name,
		})

	result, err := gqlc.Execute(ctx, &graphql.Request{
		Query:     query,
		Variables: variables,
	})
	reporter.AddOutcome(name, query, result, err)

	if err != nil {
		logger.LogWithFields(logrus.ErrorLevel, PROBES_PROBE_TRANSPORT_HAS_FAILED,
			map[string]string{
				"probe": name,
			})
		return nil
	}
	return result
}

// runCases builds and sends each case of a suite in order.
func runCases(
	ctx context.Context,
	logger logging.ILogger,
	gqlc graphql.IGraphQlClient,
	reporter report.IReporter,
	cases []probeCase,
) {

	for _, c := range cases {
		query, err := graphql.BuildDeviceQuery(c.fields, c.opts)
		if err != nil {
			logger.LogWithFields(logrus.ErrorLevel, PROBES_QUERY_COULD_NOT_BE_BUILT,
				map[string]string{
					"probe": c.name,
				})
			reporter.AddOutcome(c.name, "", nil, err)
			continue
		}
		runProbe(ctx, logger, gqlc, reporter, c.name, query, c.variables)
	}
}
