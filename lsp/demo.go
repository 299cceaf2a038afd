package lsp

import (
	"fmt"
	"io"
)

// Demonstrate narrates the lesson to w: ReserveAll breaking when a stubbed
// trial is substituted in, then the split interfaces making that substitution
// unrepresentable.
func Demonstrate(w io.Writer) error {
	fmt.Fprintln(w, "before: GymMembership forces every tier to promise ReserveGymSlot")
	fmt.Fprintf(w, "  Standard: %d sessions, Trial: %d sessions\n",
		Standard{}.TrainingSessions(), StubbedTrial{}.TrainingSessions())

	if err := ReserveAll(Standard{}, Standard{}); err != nil {
		return err
	}
	fmt.Fprintln(w, "  ReserveAll(Standard, Standard): ok")

	if err := ReserveAll(Standard{}, StubbedTrial{}); err != nil {
		fmt.Fprintf(w, "  ReserveAll(Standard, Trial): %v (substituting a Trial broke a working caller)\n", err)
	}

	fmt.Fprintln(w, "after: Membership and GymAccess are separate promises")
	fmt.Fprintf(w, "  Trial keeps its %d sessions and never claims ReserveGymSlot\n",
		Trial{}.TrainingSessions())

	if err := ReserveGymSlots(Standard{}); err != nil {
		return err
	}
	fmt.Fprintln(w, "  ReserveGymSlots(Standard): ok, and a Trial does not even fit the parameter")
	return nil
}
