package shard

import (
	"errors"
	"strings"

	"github.com/fold-ml/fold/internal/tensor"
)

// StateDict is an ordered mapping from parameter names to tensors,
// representing a model's persisted weights. Keys follow the usual
// hierarchical dot-separated convention ("encoder.layer0.weight").
// Insertion order is preserved; overwriting an existing key keeps its
// position.
type StateDict struct {
	keys   []string
	values map[string]*tensor.Tensor
}

// NewStateDict creates an empty state dict.
func NewStateDict() *StateDict {
	return &StateDict{
		values: make(map[string]*tensor.Tensor),
	}
}

// Set stores a tensor under the given key.
func (sd *StateDict) Set(key string, t *tensor.Tensor) {
	if _, ok := sd.values[key]; !ok {
		sd.keys = append(sd.keys, key)
	}
	sd.values[key] = t
}

// Get returns the tensor stored under the given key.
func (sd *StateDict) Get(key string) (*tensor.Tensor, bool) {
	t, ok := sd.values[key]
	return t, ok
}

// Delete removes the entry for the given key, if present.
func (sd *StateDict) Delete(key string) {
	if _, ok := sd.values[key]; !ok {
		return
	}
	delete(sd.values, key)
	for i, k := range sd.keys {
		if k == key {
			sd.keys = append(sd.keys[:i], sd.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a snapshot of the keys in insertion order. Mutating the
// dict during iteration over the snapshot is safe.
func (sd *StateDict) Keys() []string {
	return append([]string(nil), sd.keys...)
}

// Len returns the number of entries.
func (sd *StateDict) Len() int {
	return len(sd.keys)
}

// ReplaceStateDictPrefix renames every key starting with oldPrefix,
// replacing the prefix substring with newPrefix in place. Keys without
// the prefix are untouched. Returns an error when the prefixes are
// identical, since the rename would otherwise silently do nothing
// meaningful while still rewriting every entry.
//
// Example:
//
//	sd.Set("layer.weight", t)
//	shard.ReplaceStateDictPrefix(sd, "layer.", "module.layer.")
//	// sd now holds only "module.layer.weight"
func ReplaceStateDictPrefix(sd *StateDict, oldPrefix, newPrefix string) error {
	if oldPrefix == newPrefix {
		return errors.New("old prefix and new prefix must be distinct")
	}
	for _, key := range sd.Keys() {
		if !strings.HasPrefix(key, oldPrefix) {
			continue
		}
		newKey := newPrefix + key[len(oldPrefix):]
		t, _ := sd.Get(key)
		sd.Set(newKey, t)
		sd.Delete(key)
	}
	return nil
}
