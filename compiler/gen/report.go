package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Outcome is the result of generating one entity.
type Outcome struct {
	// Entity is the name of the entity.
	Entity string
	// Units holds the full names of the emitted units. A failed outcome
	// lists the units written before the failure.
	Units []string
	// Err is the failure of the entity, if any.
	Err error
}

// Kind returns the error kind of a failed outcome, or "".
func (o *Outcome) Kind() string {
	return ErrorKind(o.Err)
}

// Report is the result of a generation pass. Outcomes follow the order of
// the input schemas.
type Report struct {
	RunID    string
	Outcomes []*Outcome
}

// Failed returns the failed outcomes.
func (r *Report) Failed() []*Outcome {
	var failed []*Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Err joins the errors of all failed entities.
func (r *Report) Err() error {
	var errs []error
	for _, o := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", o.Entity, o.Err))
	}
	return errors.Join(errs...)
}

// WriteTo writes a table of all outcomes to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ENTITY\tSTATUS\tDETAIL\n")
	for _, o := range r.Outcomes {
		switch {
		case o.Err != nil && len(o.Units) > 0:
			fmt.Fprintf(tw, "%s\t%s\t%v (written: %s)\n", o.Entity, o.Kind(), o.Err, strings.Join(o.Units, ", "))
		case o.Err != nil:
			fmt.Fprintf(tw, "%s\t%s\t%v\n", o.Entity, o.Kind(), o.Err)
		default:
			fmt.Fprintf(tw, "%s\tok\t%s\n", o.Entity, strings.Join(o.Units, ", "))
		}
	}
	if err := tw.Flush(); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// String returns the outcome table.
func (r *Report) String() string {
	var b strings.Builder
	_, _ = r.WriteTo(&b)
	return b.String()
}
