package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sl1tools/sl1probe/internal/graphql"
)

const bannerWidth = 60

type IReporter interface {
	AddOutcome(
		name string,
		query string,
		result *graphql.Result,
		err error,
	)
	Flush() error
}

// Outcome is one probe's finding: the query that was sent and either the
// classified server response or the transport error that prevented one.
type Outcome struct {
	Name   string
	Query  string
	Result *graphql.Result
	Err    error
}

// Reporter accumulates probe outcomes and renders them as banner-separated
// sections with pretty-printed JSON, the way one would eyeball a sequence
// of manual curl calls.
type Reporter struct {
	Outcomes []Outcome
	writer   io.Writer
}

func NewReporter(
	writer io.Writer,
) *Reporter {
	return &Reporter{
		Outcomes: make([]Outcome, 0),
		writer:   writer,
	}
}

func (r *Reporter) AddOutcome(
	name string,
	query string,
	result *graphql.Result,
	err error,
) {
	r.Outcomes = append(r.Outcomes, Outcome{
		Name:   name,
		Query:  query,
		Result: result,
		Err:    err,
	})
}

func (r *Reporter) Flush() error {
	for _, o := range r.Outcomes {
		if err := r.render(&o); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) render(
	o *Outcome,
) error {

	banner := strings.Repeat("=", bannerWidth)
	fmt.Fprintf(r.writer, "\n%s\nTesting: %s\n%s\n", banner, o.Name, banner)

	if o.Query != "" {
		fmt.Fprintf(r.writer, "%s\n", o.Query)
	}

	if o.Err != nil {
		color.New(color.FgRed).Fprintf(r.writer, "Request failed: %v\n", o.Err)
		return nil
	}

	if o.Result == nil {
		fmt.Fprintln(r.writer, "No response")
		return nil
	}

	if o.Result.HasErrors() {
		color.New(color.FgRed).Fprintln(r.writer, "GraphQL errors:")
		if err := r.printJson(o.Result.Errors); err != nil {
			return err
		}
	}

	if o.Result.HasData() {
		color.New(color.FgGreen).Fprintln(r.writer, "Data received:")
		if err := r.printJson(o.Result.Data); err != nil {
			return err
		}
	}

	return nil
}

func (r *Reporter) printJson(
	v any,
) error {

	// Re-indent raw payloads as-is, marshal everything else
	var out []byte
	if raw, ok := v.(json.RawMessage); ok {
		buf := new(bytes.Buffer)
		if err := json.Indent(buf, raw, "", "  "); err != nil {
			return err
		}
		out = buf.Bytes()
	} else {
		var err error
		out, err = json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(r.writer, "%s\n", out)
	return err
}
