package token

import "sync"

// Dynamic token registry. The parser engine is grammar-agnostic: a grammar
// built on top of it can introduce its own keywords (say, `const` or `fn`)
// without editing this package. Registration typically happens at init()
// time, before any lexing starts.
var (
	registryMu      sync.RWMutex
	nextKindID      = maxBuiltin
	dynamicKinds    = make(map[Kind]string)
	dynamicKeywords = make(map[string]Kind)
)

// Register registers a new dynamic keyword token with the given spelling and
// returns its kind. Registering the same spelling twice returns the kind
// assigned on first registration.
func Register(name string) Kind {
	registryMu.Lock()
	defer registryMu.Unlock()

	if k, ok := dynamicKeywords[name]; ok {
		return k
	}

	nextKindID++
	k := nextKindID
	dynamicKinds[k] = name
	dynamicKeywords[name] = k
	return k
}

// getDynamicName returns the spelling of a dynamic token.
func getDynamicName(k Kind) (string, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	name, ok := dynamicKinds[k]
	return name, ok
}

// LookupDynamicKeyword returns the kind for a dynamically registered keyword.
func LookupDynamicKeyword(name string) (Kind, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	k, ok := dynamicKeywords[name]
	return k, ok
}

// IsDynamic returns true if the kind was dynamically registered.
func IsDynamic(k Kind) bool {
	return k > maxBuiltin
}
