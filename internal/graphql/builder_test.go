package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_BuildDeviceQueryBasic(t *testing.T) {
	query, err := BuildDeviceQuery(
		[]string{"id", "name"},
		DeviceQueryOptions{First: 2},
	)

	assert.Nil(t, err)
	assert.Contains(t, query, "devices(first: 2)")
	assert.Contains(t, query, "id")
	assert.Contains(t, query, "name")
	assert.NotContains(t, query, "pageInfo")
	assert.NotContains(t, query, "search")
}

func Test_BuildDeviceQueryWithPageInfo(t *testing.T) {
	query, err := BuildDeviceQuery(
		[]string{"id", "name"},
		DeviceQueryOptions{First: 2, WithPageInfo: true},
	)

	assert.Nil(t, err)
	assert.Contains(t, query, "pageInfo")
	assert.Contains(t, query, "hasNextPage")
}

func Test_BuildDeviceQueryWithNestedSelection(t *testing.T) {
	query, err := BuildDeviceQuery(
		[]string{"id", "deviceClass { id }", "organization { id }"},
		DeviceQueryOptions{First: 3},
	)

	assert.Nil(t, err)
	assert.Contains(t, query, "deviceClass { id }")
	assert.Contains(t, query, "organization { id }")
}

func Test_BuildDeviceQuerySearchShapes(t *testing.T) {
	tests := []struct {
		name string
		opts DeviceQueryOptions
		want string
	}{
		{
			name: "plain string search",
			opts: DeviceQueryOptions{
				First:       2,
				Search:      "server",
				SearchShape: SearchString,
			},
			want: `devices(first: 2, search: "server")`,
		},
		{
			name: "structured filter search",
			opts: DeviceQueryOptions{
				First:       2,
				Search:      "SELAB",
				SearchShape: SearchFiltered,
			},
			want: `devices(first: 2, search: {name: {contains: "SELAB"}})`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := BuildDeviceQuery([]string{"id", "name"}, tt.opts)
			assert.Nil(t, err)
			assert.Contains(t, query, tt.want)
		})
	}
}

func Test_BuildDeviceQueryRejectsInvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		opts   DeviceQueryOptions
	}{
		{
			name:   "no fields",
			fields: []string{},
			opts:   DeviceQueryOptions{First: 2},
		},
		{
			name:   "zero first",
			fields: []string{"id"},
			opts:   DeviceQueryOptions{},
		},
		{
			name:   "search shape without term",
			fields: []string{"id"},
			opts:   DeviceQueryOptions{First: 2, SearchShape: SearchFiltered},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildDeviceQuery(tt.fields, tt.opts)
			assert.NotNil(t, err)
		})
	}
}
