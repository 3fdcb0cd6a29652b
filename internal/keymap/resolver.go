package keymap

import "strings"

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
	order    []Binding
}

// NewResolver creates a resolver from bindings.
// When a key appears twice, the first binding wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
		order:    bindings,
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			if _, exists := r.bindings[key]; !exists {
				r.bindings[key] = b.Action
			}
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// HelpEntries returns "key desc" pairs for the bindings of the given
// contexts, in binding order, using the first key of each binding.
func (r *Resolver) HelpEntries(contexts ...string) []string {
	var parts []string
	for _, b := range r.order {
		for _, c := range contexts {
			if b.Context == c && len(b.Keys) > 0 {
				parts = append(parts, b.Keys[0]+" "+strings.ToLower(b.Description))
				break
			}
		}
	}
	return parts
}

// HelpLine joins HelpEntries with sep.
func (r *Resolver) HelpLine(sep string, contexts ...string) string {
	return strings.Join(r.HelpEntries(contexts...), sep)
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
