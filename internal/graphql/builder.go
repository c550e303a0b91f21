package graphql

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// SearchShape selects which form the search argument takes. The SL1 schema
// is inconsistently documented here; both shapes stay expressible so a probe
// run against a live server settles which one it accepts.
type SearchShape int

const (
	SearchNone SearchShape = iota
	// SearchString sends search as a plain string: search: "term"
	SearchString
	// SearchFiltered sends the structured filter: search: {name: {contains: "term"}}
	SearchFiltered
)

type DeviceQueryOptions struct {
	First        int
	Search       string
	SearchShape  SearchShape
	WithPageInfo bool
}

const deviceQueryTemplate = `query {
  devices({{ .Arguments }}) {
    edges {
      node {
{{- range .Fields }}
        {{ . }}
{{- end }}
      }
    }
{{- if .WithPageInfo }}
    pageInfo {
      hasNextPage
    }
{{- end }}
  }
}`

type deviceQueryValues struct {
	Arguments    string
	Fields       []string
	WithPageInfo bool
}

// BuildDeviceQuery renders a device connection query for the given node
// fields. An entry may carry a subfield selection, e.g. "deviceClass { id }".
func BuildDeviceQuery(
	fields []string,
	opts DeviceQueryOptions,
) (
	string,
	error,
) {

	if len(fields) == 0 {
		return "", errors.New("at least one node field is required")
	}
	if opts.First <= 0 {
		return "", errors.New("first must be positive")
	}
	if opts.SearchShape != SearchNone && opts.Search == "" {
		return "", errors.New("search term is required for a search query")
	}

	// Parse query template
	t, err := template.New("devices").Parse(deviceQueryTemplate)
	if err != nil {
		return "", err
	}

	// Write substituted query template into buffer
	buf := new(bytes.Buffer)
	err = t.Execute(buf, &deviceQueryValues{
		Arguments:    buildArguments(opts),
		Fields:       fields,
		WithPageInfo: opts.WithPageInfo,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func buildArguments(
	opts DeviceQueryOptions,
) string {

	args := []string{
		fmt.Sprintf("first: %d", opts.First),
	}

	switch opts.SearchShape {
	case SearchString:
		args = append(args, fmt.Sprintf("search: %q", opts.Search))
	case SearchFiltered:
		args = append(args, fmt.Sprintf("search: {name: {contains: %q}}", opts.Search))
	}

	return strings.Join(args, ", ")
}
