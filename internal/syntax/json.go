package syntax

import (
	"encoding/json"
	"fmt"
	"io"
)

// FprintJSON writes a JSON representation of node to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toTree(node))
}

// toTree converts node into the generic document shared by the JSON and
// YAML printers.
func toTree(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case Word:
		return map[string]interface{}{
			"type":  "Word",
			"value": string(n),
		}

	case Quote:
		return map[string]interface{}{
			"type":  "Quote",
			"terms": mapSlice(n, termTree),
		}

	case Terms:
		return map[string]interface{}{
			"type":  "Terms",
			"terms": mapSlice(n, termTree),
		}

	case Rule:
		return map[string]interface{}{
			"type":        "Rule",
			"pattern":     mapSlice(n.Pattern, termTree),
			"replacement": mapSlice(n.Replacement, termTree),
		}

	case Rules:
		return map[string]interface{}{
			"type":  "Rules",
			"rules": mapSlice(n, func(r Rule) interface{} { return toTree(r) }),
		}
	}

	return map[string]interface{}{"type": fmt.Sprintf("%T", node)}
}

func termTree(t Term) interface{} {
	return toTree(t)
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
