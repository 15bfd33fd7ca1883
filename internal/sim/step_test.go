package sim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	t.Parallel()

	steps, err := ParseScript(" drag:-30, DRAG:-12.5,release,,grow:200 ")
	require.NoError(t, err)

	want := []Step{
		{Op: OpDrag, Arg: -30},
		{Op: OpDrag, Arg: -12.5},
		{Op: OpRelease},
		{Op: OpGrow, Arg: 200},
	}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "drag:-12.5", steps[1].String())
	require.Equal(t, "release", steps[2].String())
}

func TestParseScriptErrors(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":               "empty script",
		" , ":            "empty script",
		"fling:10":       `step 1: unknown op "fling"`,
		"release,drag":   "step 2: drag needs an argument",
		"end:3":          "step 1: end takes no argument",
		"scroll:forward": "step 1: strconv.ParseFloat",
	}
	for script, want := range cases {
		_, err := ParseScript(script)
		require.Error(t, err, script)
		require.Contains(t, err.Error(), want, script)
	}
}
