package ui

import "testing"

func TestInflightSingleFlight(t *testing.T) {
	f := newInflight()
	if f.busy() {
		t.Fatalf("fresh tracker should be idle")
	}
	if !f.start(opRefresh) {
		t.Fatalf("start on idle tracker refused")
	}
	if !f.busy() || !f.active(opRefresh) {
		t.Fatalf("refresh should be in flight")
	}

	// Any operation is refused while another is active, including a
	// second instance of the same kind.
	if f.start(opAccept) {
		t.Fatalf("accept started while refresh in flight")
	}
	if f.start(opRefresh) {
		t.Fatalf("duplicate refresh started")
	}

	f.finish(opRefresh)
	if f.busy() {
		t.Fatalf("tracker still busy after finish")
	}
	if !f.start(opAccept) {
		t.Fatalf("accept refused on idle tracker")
	}
}

func TestInflightFinishUnstarted(t *testing.T) {
	f := newInflight()
	f.finish(opAccept) // must not panic or corrupt state
	if f.busy() {
		t.Fatalf("finishing an unstarted operation made the tracker busy")
	}
}

func TestOperationString(t *testing.T) {
	if got := opRefresh.String(); got != "refresh" {
		t.Fatalf("opRefresh.String() = %q", got)
	}
	if got := opAccept.String(); got != "accept" {
		t.Fatalf("opAccept.String() = %q", got)
	}
	if got := operation(99).String(); got != "unknown" {
		t.Fatalf("unknown operation String() = %q", got)
	}
}
