package i18n

import "strings"

// resolvePath walks a dot separated path through nested string maps. The
// walk is permissive: reaching the end of the path on a subtree returns the
// subtree itself, ok=true. It reports ok=false when any segment is missing
// or a non-mapping value is hit before the path is exhausted.
func resolvePath(root any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	current := root
	for _, segment := range strings.Split(path, ".") {
		node, ok := asTree(current)
		if !ok {
			return nil, false
		}

		value, ok := node[segment]
		if !ok {
			return nil, false
		}
		current = value
	}

	return current, true
}

func asTree(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case WordTree:
		return v, true
	case map[string]any:
		return v, true
	case map[string]string:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// subtree reports whether value is a nested word tree. Unlike asTree it does
// not widen map[string]string, so the returned tree is safe to mutate.
func subtree(value any) (WordTree, bool) {
	switch v := value.(type) {
	case WordTree:
		return v, true
	case map[string]any:
		return WordTree(v), true
	default:
		return nil, false
	}
}
