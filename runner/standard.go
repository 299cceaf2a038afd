package runner

import (
	"github.com/sghaida/solid/dip"
	"github.com/sghaida/solid/isp"
	"github.com/sghaida/solid/lsp"
	"github.com/sghaida/solid/ocp"
	"github.com/sghaida/solid/srp"
)

// Standard returns the built-in catalog: the five principles in the order
// that spells the word.
func Standard() *Catalog {
	c := &Catalog{}

	c.MustRegister(Demo{
		Name:      "srp",
		Principle: "Single Responsibility Principle",
		Title:     "One reason to change",
		Summary:   "Splits a membership Add that validates, stores, and writes its own log file.",
		Lesson:    srp.Lesson,
		Run:       srp.Demonstrate,
	})
	c.MustRegister(Demo{
		Name:      "ocp",
		Principle: "Open/Closed Principle",
		Title:     "Open for extension, closed for modification",
		Summary:   "Replaces a membership-tier switch with an interface new tiers implement.",
		Lesson:    ocp.Lesson,
		Run:       ocp.Demonstrate,
	})
	c.MustRegister(Demo{
		Name:      "lsp",
		Principle: "Liskov Substitution Principle",
		Title:     "Substitutes must behave",
		Summary:   "Splits gym access out of membership so a trial cannot break ReserveAll.",
		Lesson:    lsp.Lesson,
		Run:       lsp.Demonstrate,
	})
	c.MustRegister(Demo{
		Name:      "isp",
		Principle: "Interface Segregation Principle",
		Title:     "No forced dependencies on unused methods",
		Summary:   "Breaks one fat perks interface into one small interface per perk.",
		Lesson:    isp.Lesson,
		Run:       isp.Demonstrate,
	})
	c.MustRegister(Demo{
		Name:      "dip",
		Principle: "Dependency Inversion Principle",
		Title:     "Depend on abstractions, not details",
		Summary:   "Inverts a registrar's logging dependency, violation first, fix after.",
		Lesson:    dip.Lesson,
		Run:       dip.Demonstrate,
	})

	return c
}
