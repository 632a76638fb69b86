package resume

import (
	_ "embed"
	"strings"
	"sync"
)

//go:embed taxonomy.txt
var taxonomyData string

var (
	taxonomy     []string
	taxonomyOnce sync.Once
)

// Taxonomy returns the skill keyword list. Parsed once at first use;
// callers must not mutate the returned slice.
func Taxonomy() []string {
	taxonomyOnce.Do(func() {
		for _, line := range strings.Split(taxonomyData, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			taxonomy = append(taxonomy, strings.ToLower(line))
		}
	})
	return taxonomy
}
