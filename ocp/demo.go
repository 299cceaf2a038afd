package ocp

import (
	"fmt"
	"io"
)

// Demonstrate narrates the lesson to w: the switch rejecting a tier it has
// never heard of, then the interface shape where a new tier costs no edits.
func Demonstrate(w io.Writer) error {
	fmt.Fprintln(w, "before: SessionsByKind owns every tier in one switch")
	for _, kind := range []string{"standard", "pro", "premium"} {
		n, err := SessionsByKind(kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s: %d sessions\n", kind, n)
	}
	if _, err := SessionsByKind("student"); err != nil {
		fmt.Fprintf(w, "  student: %v (every new tier is an edit here)\n", err)
	}

	fmt.Fprintln(w, "after: tiers implement Membership, existing code stays closed")
	tiers := []Membership{Standard{}, Pro{}, Premium{}}
	for _, m := range tiers {
		fmt.Fprintf(w, "  %T: %d sessions\n", m, m.TrainingSessions())
	}
	fmt.Fprintf(w, "  total across %d memberships: %d sessions\n", len(tiers), TotalSessions(tiers...))
	return nil
}
