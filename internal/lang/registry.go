package lang

import "sync"

// Registry holds one immutable Profile per supported language.
// Build it once at start-up and pass it to the stages that need it.
type Registry struct {
	profiles [len(All) + 1]*Profile
}

// NewRegistry builds the profile tables for every language.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, l := range All {
		r.profiles[l] = newProfile(l)
	}
	return r
}

func newProfile(l Language) *Profile {
	switch l {
	case JavaScript:
		return javascriptProfile()
	case Python:
		return pythonProfile()
	case C:
		return cProfile()
	case Cpp:
		return cppProfile()
	case Java:
		return javaProfile()
	case Invalid:
		return nil
	default:
		return nil
	}
}

// Lookup returns the profile for l, or a *ConfigError when l is not supported.
func (r *Registry) Lookup(l Language) (*Profile, error) {
	if r == nil || !l.Valid() || r.profiles[l] == nil {
		return nil, &ConfigError{Tag: l.String()}
	}
	return r.profiles[l], nil
}

// LookupTag parses tag and returns its profile.
func (r *Registry) LookupTag(tag string) (*Profile, error) {
	l, err := Parse(tag)
	if err != nil {
		return nil, err
	}
	return r.Lookup(l)
}

// MustLookup is Lookup for languages known to be valid; it panics otherwise.
func (r *Registry) MustLookup(l Language) *Profile {
	p, err := r.Lookup(l)
	if err != nil {
		panic(err)
	}
	return p
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns a shared registry. Profiles are immutable, so sharing is safe.
func Default() *Registry {
	return defaultRegistry()
}
