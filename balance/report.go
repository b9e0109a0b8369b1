// SPDX-License-Identifier: MIT

package balance

import (
	"errors"

	"github.com/google/uuid"
)

// Report is the encodable summary of a batch run.
type Report struct {
	ID       string  `json:"id" yaml:"id" msgpack:"id"`
	Total    int     `json:"total" yaml:"total" msgpack:"total"`
	Balanced int     `json:"balanced" yaml:"balanced" msgpack:"balanced"`
	Failed   int     `json:"failed" yaml:"failed" msgpack:"failed"`
	Entries  []Entry `json:"entries" yaml:"entries" msgpack:"entries"`
}

// Entry is one equation of a Report. Result is set on success; Stage and
// Error on failure.
type Entry struct {
	Index  int     `json:"index" yaml:"index" msgpack:"index"`
	Input  string  `json:"input" yaml:"input" msgpack:"input"`
	OK     bool    `json:"ok" yaml:"ok" msgpack:"ok"`
	Result *Result `json:"result,omitempty" yaml:"result,omitempty" msgpack:"result,omitempty"`
	Stage  string  `json:"stage,omitempty" yaml:"stage,omitempty" msgpack:"stage,omitempty"`
	Error  string  `json:"error,omitempty" yaml:"error,omitempty" msgpack:"error,omitempty"`
}

// NewReport summarises outcomes under a fresh random run ID.
// Failures that are not a *Error (batch cancellation) carry no stage.
func NewReport(outcomes []Outcome) Report {
	r := Report{
		ID:      uuid.NewString(),
		Total:   len(outcomes),
		Entries: make([]Entry, len(outcomes)),
	}
	for i, o := range outcomes {
		e := Entry{Index: o.Index, Input: o.Input, OK: o.OK(), Result: o.Result}
		if o.OK() {
			r.Balanced++
		} else {
			r.Failed++
			e.Error = o.Err.Error()
			var be *Error
			if errors.As(o.Err, &be) {
				e.Stage = be.Stage.String()
			}
		}
		r.Entries[i] = e
	}

	return r
}
