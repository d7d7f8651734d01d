package input

import (
	"sort"
)

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry map[string]IntentType

func init() {
	actionRegistry = make(map[string]IntentType, len(intentNames))
	for t, name := range intentNames {
		actionRegistry[name] = t
	}
}

// ActionIntent resolves a canonical action name to its intent
// "none" resolves to IntentNone and unbinds the key
func ActionIntent(name string) (IntentType, bool) {
	t, ok := actionRegistry[name]
	return t, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
