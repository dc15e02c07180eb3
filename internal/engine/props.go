package engine

import (
	"lounge/internal/input"
)

// Prop helpers read values decoded from JSON (numbers arrive as float64)
// or set from Go code, falling back to def.

func PropFloat(props map[string]any, key string, def float32) float32 {
	switch v := props[key].(type) {
	case float64:
		return float32(v)
	case float32:
		return v
	case int:
		return float32(v)
	}
	return def
}

func PropString(props map[string]any, key string, def string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return def
}

func PropBool(props map[string]any, key string, def bool) bool {
	if v, ok := props[key].(bool); ok {
		return v
	}
	return def
}

// PropKey accepts a key name ("E", "escape", ",") or a raw key code.
func PropKey(props map[string]any, key string, def input.Key) input.Key {
	if k, ok := KeyValue(props[key]); ok {
		return k
	}
	return def
}

// KeyValue converts a prop value to a key.
func KeyValue(v any) (input.Key, bool) {
	switch v := v.(type) {
	case string:
		k, err := input.ParseKey(v)
		return k, err == nil
	case float64:
		return input.Key(v), true
	case int:
		return input.Key(v), true
	case input.Key:
		return v, true
	}
	return 0, false
}

func PropRef(props map[string]any, key string) GameObjectRef {
	ref, _ := RefValue(props[key])
	return ref
}

// RefValue converts a UID prop value to a reference.
func RefValue(v any) (GameObjectRef, bool) {
	switch v := v.(type) {
	case float64:
		if v >= 0 {
			return GameObjectRef{UID: uint64(v)}, true
		}
	case int:
		if v >= 0 {
			return GameObjectRef{UID: uint64(v)}, true
		}
	case uint64:
		return GameObjectRef{UID: v}, true
	case GameObjectRef:
		return v, true
	}
	return GameObjectRef{}, false
}

// PropRefs reads a list of UIDs. Entries that are not UIDs are dropped.
func PropRefs(props map[string]any, key string) []GameObjectRef {
	var refs []GameObjectRef
	switch list := props[key].(type) {
	case []any:
		for _, v := range list {
			if ref, ok := RefValue(v); ok {
				refs = append(refs, ref)
			}
		}
	case []GameObjectRef:
		refs = append(refs, list...)
	}
	return refs
}

// RefUIDs is the inverse of PropRefs for serializers.
func RefUIDs(refs []GameObjectRef) []any {
	out := make([]any, len(refs))
	for i, r := range refs {
		out[i] = r.UID
	}
	return out
}
