package zdict

import (
	"fmt"
	"sort"
)

type Dict map[string]any

// Join returns key<equal>value pairs separated by sep, sorted by key
func (d Dict) Join(equal, sep string) string {
	str := ""
	for _, k := range d.SortedKeys() {
		if str != "" {
			str += sep
		}
		str += fmt.Sprint(k, equal, d[k])
	}
	return str
}

func (d Dict) SortedKeys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
