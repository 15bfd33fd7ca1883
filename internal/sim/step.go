package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is a scripted action.
type Op string

const (
	OpDrag    Op = "drag"    // move by Arg along the edge axis while touching
	OpRelease Op = "release" // lift the finger and let the surface settle
	OpScroll  Op = "scroll"  // move by Arg without a gesture
	OpBegin   Op = "begin"
	OpEnd     Op = "end"
	OpNoMore  Op = "nomore"
	OpReset   Op = "reset"
	OpGrow    Op = "grow" // extend the content by Arg points
	OpHide    Op = "hide"
	OpShow    Op = "show"
)

var argOps = map[Op]bool{OpDrag: true, OpScroll: true, OpGrow: true}

var knownOps = map[Op]bool{
	OpDrag: true, OpRelease: true, OpScroll: true, OpBegin: true, OpEnd: true,
	OpNoMore: true, OpReset: true, OpGrow: true, OpHide: true, OpShow: true,
}

// Step is one parsed script entry.
type Step struct {
	Op  Op
	Arg float64
}

func (s Step) String() string {
	if argOps[s.Op] {
		return fmt.Sprintf("%s:%g", s.Op, s.Arg)
	}
	return string(s.Op)
}

// ParseScript reads a comma separated script such as
// "drag:-30,drag:-40,release,end".
func ParseScript(script string) ([]Step, error) {
	var steps []Step
	for i, raw := range strings.Split(script, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		name, arg, hasArg := strings.Cut(raw, ":")
		op := Op(strings.ToLower(name))
		if !knownOps[op] {
			return nil, fmt.Errorf("step %d: unknown op %q", i+1, name)
		}
		if argOps[op] != hasArg {
			if hasArg {
				return nil, fmt.Errorf("step %d: %s takes no argument", i+1, op)
			}
			return nil, fmt.Errorf("step %d: %s needs an argument, e.g. %s:10", i+1, op, op)
		}

		step := Step{Op: op}
		if hasArg {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			step.Arg = v
		}
		steps = append(steps, step)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("empty script")
	}
	return steps, nil
}
