package model

import (
	"fmt"
	"strings"
)

// PlanDraft is a plan as described on the command line, before the server
// has assigned an identifier to it.
// Start and End are optional; a draft with neither is an untimed plan.
type PlanDraft struct {
	Title string
	Start *Timestamp
	End   *Timestamp
}

// Plan is a PlanDraft that may carry the identifier assigned by the server.
// ID is nil for plans that have not been stored yet.
type Plan struct {
	ID *int
	PlanDraft
}

// PlanRecord is the representation of a plan the plan server exchanges, where
// every time component is individually nullable.
type PlanRecord struct {
	ID      *int   `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	FromHr  *int   `json:"from_hr" yaml:"from_hr"`
	FromMin *int   `json:"from_min" yaml:"from_min"`
	ToHr    *int   `json:"to_hr" yaml:"to_hr"`
	ToMin   *int   `json:"to_min" yaml:"to_min"`
}

// Record returns the draft in the server's representation, with a null ID.
func (d PlanDraft) Record() PlanRecord {
	r := PlanRecord{Title: d.Title}
	if d.Start != nil {
		r.FromHr, r.FromMin = intPtr(d.Start.Hour), intPtr(d.Start.Minute)
	}
	if d.End != nil {
		r.ToHr, r.ToMin = intPtr(d.End.Hour), intPtr(d.End.Minute)
	}
	return r
}

// Record returns the plan in the server's representation.
func (p Plan) Record() PlanRecord {
	r := p.PlanDraft.Record()
	if p.ID != nil {
		r.ID = intPtr(*p.ID)
	}
	return r
}

// PlanFromRecord converts a plan as received from the server.
// A time for which only one of hour and minute is set (or which is out of
// range) is dropped, as a Timestamp is never partial.
func PlanFromRecord(r PlanRecord) Plan {
	p := Plan{PlanDraft: PlanDraft{Title: r.Title}}
	if r.ID != nil {
		p.ID = intPtr(*r.ID)
	}
	p.Start = timestampFromComponents(r.FromHr, r.FromMin)
	p.End = timestampFromComponents(r.ToHr, r.ToMin)
	return p
}

// String renders the plan as a single line, e.g.
//
//	[5] 09:30 - 10:00 Standup
//
// Absent times leave their hour and minute empty but keep the colon, so an
// untimed plan without ID renders as ': - : Title'.
func (p Plan) String() string {
	r := p.Record()

	var b strings.Builder
	if r.ID != nil {
		fmt.Fprintf(&b, "[%d] ", *r.ID)
	}
	b.WriteString(formatOptional(r.FromHr))
	b.WriteString(":")
	b.WriteString(formatOptional(r.FromMin))
	b.WriteString(" - ")
	b.WriteString(formatOptional(r.ToHr))
	b.WriteString(":")
	b.WriteString(formatOptional(r.ToMin))
	b.WriteString(" ")
	b.WriteString(r.Title)
	return b.String()
}

// formatOptional zero-pads v to two digits, or returns "" for nil.
func formatOptional(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%02d", *v)
}

func timestampFromComponents(h, m *int) *Timestamp {
	if h == nil || m == nil {
		return nil
	}
	t := Timestamp{Hour: *h, Minute: *m}
	if !t.Legal() {
		return nil
	}
	return &t
}

func intPtr(v int) *int {
	return &v
}
