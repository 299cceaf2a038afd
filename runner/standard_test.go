package runner_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/solid/runner"
)

func TestStandard_SpellsSOLID(t *testing.T) {
	t.Parallel()

	want := []string{"srp", "ocp", "lsp", "isp", "dip"}
	if diff := cmp.Diff(want, runner.Standard().Names()); diff != "" {
		t.Fatalf("catalog order mismatch (-want +got):\n%s", diff)
	}
}

func TestStandard_DemosAreComplete(t *testing.T) {
	t.Parallel()

	for _, d := range runner.Standard().All() {
		d := d
		t.Run(d.Name, func(t *testing.T) {
			t.Parallel()

			assert.NotEmpty(t, d.Principle)
			assert.NotEmpty(t, d.Title)
			assert.NotEmpty(t, d.Summary)
			require.NotNil(t, d.Lesson)
			require.NotNil(t, d.Run)

			assert.True(t, strings.HasPrefix(d.Lesson(), "# "))
			assert.Contains(t, d.Principle, "Principle")
		})
	}
}

func TestStandard_EveryDemoNarratesBeforeAndAfter(t *testing.T) {
	t.Parallel()

	c := runner.Standard()
	for _, name := range c.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, c.Run(context.Background(), name, &buf))

			out := buf.String()
			assert.Contains(t, out, "before:")
			assert.Contains(t, out, "after:")
		})
	}
}
