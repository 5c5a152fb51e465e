package domain

import "testing"

func TestApplicationStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		allowed  bool
	}{
		{ApplicationStatusApplied, ApplicationStatusReviewing, true},
		{ApplicationStatusApplied, ApplicationStatusAccepted, true},
		{ApplicationStatusApplied, ApplicationStatusRejected, true},
		{ApplicationStatusReviewing, ApplicationStatusAccepted, true},
		{ApplicationStatusReviewing, ApplicationStatusRejected, true},
		{ApplicationStatusReviewing, ApplicationStatusApplied, false},
		{ApplicationStatusAccepted, ApplicationStatusRejected, false},
		{ApplicationStatusRejected, ApplicationStatusReviewing, false},
		{ApplicationStatusAccepted, ApplicationStatusAccepted, true},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestApplicationStatusValid(t *testing.T) {
	for _, s := range ApplicationStatuses() {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if ApplicationStatus("hired").Valid() {
		t.Error("unknown status reported valid")
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range Roles() {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("Admin").Valid() {
		t.Error("roles are case sensitive")
	}
}

func TestJobTags(t *testing.T) {
	job := Job{Requirements: "React, Node.js, ,TypeScript "}
	tags := job.Tags()
	want := []string{"React", "Node.js", "TypeScript"}
	if len(tags) != len(want) {
		t.Fatalf("got %v, want %v", tags, want)
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Fatalf("got %v, want %v", tags, want)
		}
	}
}
