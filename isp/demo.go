package isp

import (
	"fmt"
	"io"
)

// Demonstrate narrates the lesson to w: both plans tripping over their forced
// stubs, then the per-perk interfaces where the stubs have nothing to attach
// to.
func Demonstrate(w io.Writer) error {
	fmt.Fprintln(w, "before: Membership makes every plan implement every perk")

	studio := StubbedStudio{}
	if err := studio.BookClass("yoga"); err != nil {
		return err
	}
	fmt.Fprintf(w, "  Studio: %d sessions, booked \"yoga\", streaming is a forced stub: %v\n",
		studio.TrainingSessions(), studio.StreamWorkout("mobility"))

	online := StubbedOnline{}
	if err := online.StreamWorkout("mobility"); err != nil {
		return err
	}
	fmt.Fprintf(w, "  Online: %d sessions, streamed \"mobility\", booking is a forced stub: %v\n",
		online.TrainingSessions(), online.BookClass("yoga"))

	fmt.Fprintln(w, "after: one interface per perk, plans implement only what they honor")

	if err := ScheduleClass(Studio{}, "yoga"); err != nil {
		return err
	}
	fmt.Fprintln(w, "  ScheduleClass(Studio, \"yoga\"): ok, and Studio carries no streaming stub")

	if err := StartStream(Online{}, "mobility"); err != nil {
		return err
	}
	fmt.Fprintln(w, "  StartStream(Online, \"mobility\"): ok, and Online carries no booking stub")
	return nil
}
