package tokens

import (
	"regexp"
	"sort"
	"strings"

	"github.com/amelkic/fe-init/pkg/figma"
)

// variantNameRe matches the Key=Value naming convention Figma uses for
// variant members of a component set (e.g. "Size=Large").
var variantNameRe = regexp.MustCompile(`^\s*[\w ]+\s*=`)

// ExtractComponents filters the published component table down to
// scaffolding candidates. Variant instances are excluded, detected either by
// a containing state group or by the Key=Value naming convention, as are
// components matching any of the exclude patterns (case-insensitive
// substring match). Duplicate names keep the first occurrence; output is
// ordered by name.
func ExtractComponents(table map[string]figma.Component, exclude []string) []Component {
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []Component
	seenNames := make(map[string]bool)

	for _, id := range ids {
		c := table[id]
		if IsVariant(c) || isExcluded(c.Name, exclude) || seenNames[c.Name] {
			continue
		}
		seenNames[c.Name] = true
		out = append(out, Component{
			ID:          id,
			Name:        c.Name,
			Description: c.Description,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// IsVariant reports whether the component is a variant member of a component
// set rather than a standalone component.
func IsVariant(c figma.Component) bool {
	if c.ContainingStateGroup != nil {
		return true
	}
	return variantNameRe.MatchString(c.Name)
}

func isExcluded(name string, patterns []string) bool {
	lower := strings.ToLower(name)
	for _, p := range patterns {
		if p != "" && strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
