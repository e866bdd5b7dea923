package models

// Settings is the single free-form settings object of the dataset. It is not
// a collection: imports shallow-merge it key by key instead of running
// conflict detection on it.
type Settings map[string]any

// Merged returns a new Settings with imported keys written over the receiver.
// Imported values win per key; keys present only locally survive.
func (s Settings) Merged(imported Settings) Settings {
	merged := make(Settings, len(s)+len(imported))
	for k, v := range s {
		merged[k] = v
	}
	for k, v := range imported {
		merged[k] = v
	}
	return merged
}
