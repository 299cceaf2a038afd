package runner

import (
	"context"
	"io"
	"strings"
)

// Demo is one runnable lesson.
type Demo struct {
	// Name is the stable identifier the CLI uses (srp, ocp, lsp, isp, dip).
	Name string
	// Principle is the principle spelled out.
	Principle string
	// Title is the one-line headline.
	Title string
	// Summary says what the demo walks through.
	Summary string
	// Lesson returns the markdown write-up. Optional.
	Lesson func() string
	// Run writes the narrated walkthrough to w. Required.
	Run func(w io.Writer) error
}

// Catalog is an insertion-ordered set of demos.
//
// The zero value is ready to use.
type Catalog struct {
	names  []string
	byName map[string]Demo
}

// Register adds a demo. The name must be non-blank and unused, and Run must
// be set.
func (c *Catalog) Register(d Demo) error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrBlankName
	}
	if d.Run == nil {
		return ErrNilRun
	}
	if c.byName == nil {
		c.byName = map[string]Demo{}
	}
	if _, exists := c.byName[d.Name]; exists {
		return DuplicateDemoError{Name: d.Name}
	}
	c.byName[d.Name] = d
	c.names = append(c.names, d.Name)
	return nil
}

// MustRegister is Register for wiring code where a rejected demo is a
// programming error.
func (c *Catalog) MustRegister(d Demo) {
	if err := c.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the demo registered under name.
func (c *Catalog) Lookup(name string) (Demo, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// Names returns the demo names in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// All returns the demos in registration order.
func (c *Catalog) All() []Demo {
	out := make([]Demo, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byName[name])
	}
	return out
}

// Run executes one demo by name, writing its narration to w.
//
// Unknown names fail with UnknownDemoError and a done ctx fails before the
// demo starts. A panicking demo comes back as a PanicError instead of taking
// the caller down.
func (c *Catalog) Run(ctx context.Context, name string, w io.Writer) (err error) {
	d, ok := c.Lookup(name)
	if !ok {
		return UnknownDemoError{Name: name}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = PanicError{Name: name, Value: rec}
		}
	}()

	return d.Run(w)
}
