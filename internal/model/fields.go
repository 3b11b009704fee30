package model

// Fields is a loosely typed JSON object as received from a client
type Fields map[string]interface{}

// WithoutBlanks returns a copy without the keys whose value is the empty string.
// Nested values are shared with the receiver, which is left untouched.
func (f Fields) WithoutBlanks() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// Without returns a copy without the given keys
func (f Fields) Without(keys ...string) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Only returns a copy holding just the given keys
func (f Fields) Only(keys ...string) Fields {
	out := make(Fields, len(keys))
	for _, k := range keys {
		if v, ok := f[k]; ok {
			out[k] = v
		}
	}
	return out
}
