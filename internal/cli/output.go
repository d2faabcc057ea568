package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"math/big"
	"slices"
	"strconv"
	"strings"
)

// printResult writes v as "pretty" text or as {"result": v} JSON.
func printResult(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"result": v})
	case "pretty", "":
		_, err := fmt.Fprintln(w, pretty(v))
		return err
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func pretty(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case []float64:
		return joinEach(x, func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) })
	case []int:
		return joinEach(x, strconv.Itoa)
	case []string:
		return strings.Join(x, " ")
	case []*big.Int:
		return joinEach(x, (*big.Int).String)
	case map[string]int:
		keys := slices.Sorted(maps.Keys(x))
		lines := make([]string, len(keys))
		for i, k := range keys {
			lines[i] = fmt.Sprintf("%s: %d", k, x[k])
		}
		return strings.Join(lines, "\n")
	default:
		return fmt.Sprint(v)
	}
}

func joinEach[T any](s []T, f func(T) string) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = f(v)
	}
	return strings.Join(parts, " ")
}
