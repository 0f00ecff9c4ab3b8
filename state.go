package morebutton

// IconState is the semantic role the button currently represents,
// independent of any animation in flight. Only StateMore and StateSearch are
// meaningful; other values are rejected by IconNode.EnqueueState.
type IconState string

const (
	StateMore   IconState = "more"
	StateSearch IconState = "search"
)

// Valid reports whether s is StateMore or StateSearch.
func (s IconState) Valid() bool {
	return s == StateMore || s == StateSearch
}

// String implements fmt.Stringer.
func (s IconState) String() string { return string(s) }
