package graphql

import (
	"encoding/json"
	"errors"
)

// Request is the JSON body of a GraphQL HTTP request.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Error is a single entry of the response's errors list.
type Error struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Result is the classified outcome of one executed request. Data and Errors
// are not exclusive: a server may return partial data alongside errors, and
// both are surfaced as-is.
type Result struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors"`
}

func (r *Result) HasData() bool {
	return len(r.Data) > 0 && string(r.Data) != "null"
}

func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// --- Device connection response --- //

type DeviceConnectionData[T any] struct {
	Devices connection[T] `json:"devices"`
}

type connection[T any] struct {
	Edges    []edge[T] `json:"edges"`
	PageInfo pageInfo  `json:"pageInfo"`
}

type edge[T any] struct {
	Node T `json:"node"`
}

type pageInfo struct {
	HasNextPage bool `json:"hasNextPage"`
}

func (d *DeviceConnectionData[T]) Nodes() []T {
	nodes := make([]T, 0, len(d.Devices.Edges))
	for _, e := range d.Devices.Edges {
		nodes = append(nodes, e.Node)
	}
	return nodes
}

func (d *DeviceConnectionData[T]) HasNextPage() bool {
	return d.Devices.PageInfo.HasNextPage
}

// UnmarshalData decodes the data payload of a result into T.
func UnmarshalData[T any](
	result *Result,
) (
	*T,
	error,
) {
	if result == nil || !result.HasData() {
		return nil, errors.New(GRAPHQL_RESPONSE_HAS_NO_DATA)
	}

	data := new(T)
	err := json.Unmarshal(result.Data, data)
	if err != nil {
		return nil, err
	}
	return data, nil
}
