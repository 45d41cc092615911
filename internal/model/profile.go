package model

// ProfileEntry is one key/value pair of the operator profile.
type ProfileEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Profile is the operator profile in source order. Keys are lower-cased on
// load and unique; values are plain strings.
type Profile struct {
	Entries []ProfileEntry `json:"entries"`
}

// Get returns the value stored under key and whether it was present.
func (p Profile) Get(key string) (string, bool) {
	for _, e := range p.Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Value returns the value stored under key, or "" when absent.
func (p Profile) Value(key string) string {
	v, _ := p.Get(key)
	return v
}

// Set stores value under key, replacing an existing entry in place.
func (p *Profile) Set(key, value string) (replaced bool) {
	for i := range p.Entries {
		if p.Entries[i].Key == key {
			p.Entries[i].Value = value
			return true
		}
	}
	p.Entries = append(p.Entries, ProfileEntry{Key: key, Value: value})
	return false
}

// Len returns the number of entries.
func (p Profile) Len() int { return len(p.Entries) }
