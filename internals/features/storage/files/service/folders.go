package service

import (
	"sort"
	"strings"
)

// DeriveFolders menurunkan pohon folder dari kumpulan object key.
// Setiap prefix path (tanpa nama file) jadi satu folder; termasuk
// folder perantara. Hasil unik dan terurut.
//
//	["a/b/x.pdf", "a/c/y.png"] → ["a", "a/b", "a/c"]
func DeriveFolders(keys []string) []string {
	set := make(map[string]struct{})
	for _, key := range keys {
		key = strings.Trim(strings.TrimSpace(key), "/")
		if key == "" {
			continue
		}
		raw := strings.Split(key, "/")
		parts := raw[:0]
		for _, p := range raw {
			if p != "" {
				parts = append(parts, p)
			}
		}
		// elemen terakhir = nama file, sisanya folder
		for i := 1; i < len(parts); i++ {
			folder := strings.Join(parts[:i], "/")
			if folder != "" {
				set[folder] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
