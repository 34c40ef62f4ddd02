package hal

import (
	"sort"
	"strings"
)

// Well known parameter keys.
const (
	KeyBluetoothSCO = "BT_SCO"
	KeyRouting      = "routing"
	KeyInputSource  = "input_source"
)

// Parameter values.
const (
	ValueOn  = "on"
	ValueOff = "off"
)

// ParseParameters splits a "k1=v1;k2=v2" string. Keys without a value map
// to the empty string.
func ParseParameters(s string) map[string]string {
	out := make(map[string]string)
	for _, kv := range strings.Split(s, ";") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		k, v, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// FormatParameters joins parameters into "k1=v1;k2=v2" with sorted keys.
func FormatParameters(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + params[k]
	}
	return strings.Join(parts, ";")
}
