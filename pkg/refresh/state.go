package refresh

import "fmt"

// State is the refresh state of a controller.
type State int

const (
	StateIdle State = iota + 1
	StatePulling
	StateRefreshing
	StateWillRefresh
	StateNoMoreData
)

var stateNames = map[State]string{
	StateIdle:        "idle",
	StatePulling:     "pulling",
	StateRefreshing:  "refreshing",
	StateWillRefresh: "willRefresh",
	StateNoMoreData:  "noMoreData",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// IsRefreshing reports whether the state counts as an active refresh.
func (s State) IsRefreshing() bool {
	return s == StateRefreshing || s == StateWillRefresh
}

// ParseState converts a state name back into a State.
func ParseState(name string) (State, error) {
	for state, n := range stateNames {
		if n == name {
			return state, nil
		}
	}
	return 0, fmt.Errorf("unknown refresh state %q", name)
}
