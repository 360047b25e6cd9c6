package mcpserver

import "strings"

// NormalizeArguments rewrites raw tool-call arguments into the shape the
// handlers decode. Clients in the wild send a few historical variants:
// a nested "arguments" object (flattened into the top level, existing keys
// win), "ID" for "id", and "postType"/"type" for "post_type". The "client"
// key is left in place; the handler layer consumes it for tenant selection.
//
// WooCommerce product tools are exempt from the "type" alias: there "type"
// is a product field (simple, variable, ...), not a post-type hint.
func NormalizeArguments(tool string, args map[string]any) map[string]any {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}

	if nested, ok := out["arguments"].(map[string]any); ok {
		delete(out, "arguments")
		for k, v := range nested {
			if _, exists := out[k]; !exists {
				out[k] = v
			}
		}
	}

	if v, ok := out["ID"]; ok {
		if _, exists := out["id"]; !exists {
			out["id"] = v
		}
		delete(out, "ID")
	}

	aliases := []string{"postType"}
	if !strings.HasSuffix(tool, "_product") {
		aliases = append(aliases, "type")
	}
	for _, alias := range aliases {
		if v, ok := out[alias]; ok {
			if _, exists := out["post_type"]; !exists {
				out["post_type"] = v
			}
			delete(out, alias)
		}
	}

	return out
}
