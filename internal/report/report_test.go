package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/sl1tools/sl1probe/internal/graphql"
	"github.com/stretchr/testify/assert"
)

var _ IReporter = (*Reporter)(nil)

func newTestReporter() (*Reporter, *bytes.Buffer) {
	color.NoColor = true
	buf := new(bytes.Buffer)
	return NewReporter(buf), buf
}

func Test_FlushRendersData(t *testing.T) {
	reporter, buf := newTestReporter()

	reporter.AddOutcome("Basic devices", "query { devices }", &graphql.Result{
		Data: json.RawMessage(`{"devices": {"edges": []}}`),
	}, nil)

	err := reporter.Flush()

	assert.Nil(t, err)
	out := buf.String()
	assert.Contains(t, out, "Testing: Basic devices")
	assert.Contains(t, out, "query { devices }")
	assert.Contains(t, out, "Data received:")
	assert.Contains(t, out, `"edges": []`)
	assert.NotContains(t, out, "GraphQL errors:")
}

func Test_FlushRendersErrors(t *testing.T) {
	reporter, buf := newTestReporter()

	reporter.AddOutcome("Bad field", "query { nope }", &graphql.Result{
		Errors: []graphql.Error{{Message: "bad field"}},
	}, nil)

	err := reporter.Flush()

	assert.Nil(t, err)
	out := buf.String()
	assert.Contains(t, out, "GraphQL errors:")
	assert.Contains(t, out, "bad field")
	assert.NotContains(t, out, "Data received:")
}

func Test_FlushRendersDataAndErrorsTogether(t *testing.T) {
	reporter, buf := newTestReporter()

	reporter.AddOutcome("Partial", "query { x }", &graphql.Result{
		Data:   json.RawMessage(`{"x": 1}`),
		Errors: []graphql.Error{{Message: "partial"}},
	}, nil)

	err := reporter.Flush()

	assert.Nil(t, err)
	out := buf.String()
	assert.Contains(t, out, "GraphQL errors:")
	assert.Contains(t, out, "Data received:")
}

func Test_FlushRendersTransportError(t *testing.T) {
	reporter, buf := newTestReporter()

	reporter.AddOutcome("Refused", "query { x }", nil, errors.New("connection refused"))

	err := reporter.Flush()

	assert.Nil(t, err)
	out := buf.String()
	assert.Contains(t, out, "Request failed: connection refused")
	assert.NotContains(t, out, "Data received:")
}

func Test_FlushHandlesMissingResult(t *testing.T) {
	reporter, buf := newTestReporter()

	reporter.AddOutcome("No answer", "query { x }", nil, nil)

	err := reporter.Flush()

	assert.Nil(t, err)
	out := buf.String()
	assert.Contains(t, out, "Testing: No answer")
	assert.Contains(t, out, "No response")
	assert.NotContains(t, out, "Data received:")
	assert.NotContains(t, out, "GraphQL errors:")
}

func Test_FlushRendersOutcomesInOrder(t *testing.T) {
	reporter, buf := newTestReporter()

	reporter.AddOutcome("first probe", "query { a }", &graphql.Result{
		Data: json.RawMessage(`{"a": 1}`),
	}, nil)
	reporter.AddOutcome("second probe", "query { b }", &graphql.Result{
		Data: json.RawMessage(`{"b": 2}`),
	}, nil)

	err := reporter.Flush()

	assert.Nil(t, err)
	out := buf.String()
	first := bytes.Index([]byte(out), []byte("first probe"))
	second := bytes.Index([]byte(out), []byte("second probe"))
	assert.True(t, first >= 0)
	assert.True(t, second > first)
}
