// Package action defines the closed set of actions that can be dispatched to
// a store, their creators, and the JSON envelope used to carry them over a
// wire.
package action

// Kind is the tag of an action.
type Kind string

// Kinds recognized by this build. The values are the wire type tags.
const (
	KindIncrement           Kind = "INCREMENT"
	KindUpdateExpandedKeys  Kind = "UPDATE_EXPANDED_KEYS"
	KindUpdateCheckedKeys   Kind = "UPDATE_CHECKED_KEYS"
	KindChangeSearchContent Kind = "CHANGE_SEARCH_CONTENT"
	KindFilterTree          Kind = "FILTER_TREE"
)

// Action is an immutable tagged record describing an intended state
// transition. The set of implementations is closed to this package.
type Action interface {
	Kind() Kind
	sealed()
}

// IncrementAction bumps the counter by one. It carries no payload.
type IncrementAction struct{}

// ExpandedKeysAction replaces the set of expanded tree nodes.
type ExpandedKeysAction struct {
	Keys []string `json:"keys"`
}

// CheckedKeysAction replaces the set of checked tree nodes.
type CheckedKeysAction struct {
	Keys []string `json:"keys"`
}

// SearchContentAction changes the search box content.
type SearchContentAction struct {
	Content string `json:"content"`
}

// FilterTreeAction filters the component tree by the given text.
type FilterTreeAction struct {
	Filter string `json:"filter"`
}

// Unknown is an action whose kind this build does not recognize, typically
// decoded from a wire envelope. Reducers treat it as a no-op.
type Unknown struct {
	Type    Kind
	Payload []byte
}

func (IncrementAction) Kind() Kind     { return KindIncrement }
func (ExpandedKeysAction) Kind() Kind  { return KindUpdateExpandedKeys }
func (CheckedKeysAction) Kind() Kind   { return KindUpdateCheckedKeys }
func (SearchContentAction) Kind() Kind { return KindChangeSearchContent }
func (FilterTreeAction) Kind() Kind    { return KindFilterTree }
func (u Unknown) Kind() Kind           { return u.Type }

func (IncrementAction) sealed()     {}
func (ExpandedKeysAction) sealed()  {}
func (CheckedKeysAction) sealed()   {}
func (SearchContentAction) sealed() {}
func (FilterTreeAction) sealed()    {}
func (Unknown) sealed()             {}

// Increment creates the action that adds one to the counter.
func Increment() Action {
	return IncrementAction{}
}

// UpdateExpandedKeys creates an action replacing the expanded tree keys.
func UpdateExpandedKeys(keys []string) Action {
	return ExpandedKeysAction{Keys: keys}
}

// UpdateCheckedKeys creates an action replacing the checked tree keys.
func UpdateCheckedKeys(keys []string) Action {
	return CheckedKeysAction{Keys: keys}
}

// ChangeSearchContent creates an action setting the search box content.
func ChangeSearchContent(content string) Action {
	return SearchContentAction{Content: content}
}

// FilterTree creates an action filtering the component tree.
func FilterTree(filter string) Action {
	return FilterTreeAction{Filter: filter}
}
