// Package scss renders extracted token records into SCSS source text.
//
// Every generator is a pure function from records to text. Output starts
// with a generated-file banner whose timestamp is the only line that differs
// between two runs over identical input.
package scss

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/amelkic/fe-init/pkg/naming"
	"github.com/amelkic/fe-init/pkg/tokens"
)

func header(generatedAt time.Time) string {
	return fmt.Sprintf("// Generated by figma-sync. Do not edit by hand.\n// Generated: %s\n\n",
		generatedAt.Format(time.RFC3339))
}

// ColorVariables renders color records grouped by color group (falling back
// to collection, then to the full name). Within a group, shades whose label
// contains "base" come first; the rest follow in descending numeric shade
// order. Each group emits per-entry variables followed by a consolidated
// group map.
func ColorVariables(colors []tokens.Color, generatedAt time.Time) string {
	var sb strings.Builder
	sb.WriteString(header(generatedAt))

	groups, order := groupColors(colors)

	for _, group := range order {
		entries := groups[group]
		sortShades(entries)

		sb.WriteString(fmt.Sprintf("// %s\n", group))
		for _, c := range entries {
			if c.Description != "" {
				sb.WriteString(fmt.Sprintf("// %s\n", c.Description))
			}
			sb.WriteString(fmt.Sprintf("$%s: %s;\n", variableName(c), c.Hex))
		}
		sb.WriteString("\n")

		sb.WriteString(fmt.Sprintf("$%s: (\n", naming.Identifier(group)))
		for _, c := range entries {
			name := variableName(c)
			sb.WriteString(fmt.Sprintf("  %q: $%s,\n", name, name))
		}
		sb.WriteString(");\n\n")
	}

	return sb.String()
}

// Semantic renders brand role aliases onto concrete token variables:
// $<role>: $<token>; plus a consolidated role map.
func Semantic(brand string, roles map[string]string, generatedAt time.Time) string {
	var sb strings.Builder
	sb.WriteString(header(generatedAt))
	sb.WriteString(fmt.Sprintf("// Semantic colors: %s\n", brand))

	names := make([]string, 0, len(roles))
	for role := range roles {
		names = append(names, role)
	}
	sort.Strings(names)

	for _, role := range names {
		sb.WriteString(fmt.Sprintf("$%s: $%s;\n", naming.Identifier(role), naming.Identifier(roles[role])))
	}

	sb.WriteString(fmt.Sprintf("\n$%s-semantic: (\n", naming.Identifier(brand)))
	for _, role := range names {
		id := naming.Identifier(role)
		sb.WriteString(fmt.Sprintf("  %q: $%s,\n", id, id))
	}
	sb.WriteString(");\n")

	return sb.String()
}

// Scale renders a named numeric scale (spacing, radius) as px variables plus
// a consolidated map, ordered by ascending value.
func Scale(prefix string, scale map[string]float64, generatedAt time.Time) string {
	var sb strings.Builder
	sb.WriteString(header(generatedAt))

	names := make([]string, 0, len(scale))
	for name := range scale {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if scale[names[i]] != scale[names[j]] {
			return scale[names[i]] < scale[names[j]]
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		sb.WriteString(fmt.Sprintf("$%s-%s: %spx;\n", prefix, naming.Identifier(name), formatNumber(scale[name])))
	}

	sb.WriteString(fmt.Sprintf("\n$%s: (\n", prefix))
	for _, name := range names {
		id := naming.Identifier(name)
		sb.WriteString(fmt.Sprintf("  %q: $%s-%s,\n", id, prefix, id))
	}
	sb.WriteString(");\n")

	return sb.String()
}

// Neutrals renders shared neutral colors plus a consolidated map.
func Neutrals(colors map[string]string, generatedAt time.Time) string {
	var sb strings.Builder
	sb.WriteString(header(generatedAt))

	names := make([]string, 0, len(colors))
	for name := range colors {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sb.WriteString(fmt.Sprintf("$%s: %s;\n", naming.Identifier(name), strings.ToUpper(colors[name])))
	}

	sb.WriteString("\n$neutrals: (\n")
	for _, name := range names {
		id := naming.Identifier(name)
		sb.WriteString(fmt.Sprintf("  %q: $%s,\n", id, id))
	}
	sb.WriteString(");\n")

	return sb.String()
}

// Borders renders stroke and corner-radius records.
func Borders(strokes, radii []tokens.Border, generatedAt time.Time) string {
	var sb strings.Builder
	sb.WriteString(header(generatedAt))

	if len(strokes) > 0 {
		sb.WriteString("// Strokes\n")
		for _, s := range strokes {
			id := naming.Identifier(s.Name)
			sb.WriteString(fmt.Sprintf("$border-%s-color: %s;\n", id, s.Color))
			if s.Weight > 0 {
				sb.WriteString(fmt.Sprintf("$border-%s-width: %spx;\n", id, formatNumber(s.Weight)))
			}
		}
		sb.WriteString("\n")
	}

	if len(radii) > 0 {
		sb.WriteString("// Corner radii\n")
		for _, r := range radii {
			id := naming.Identifier(r.Name)
			if len(r.CornerRadii) == 4 {
				sb.WriteString(fmt.Sprintf("$radius-%s: %spx %spx %spx %spx;\n", id,
					formatNumber(r.CornerRadii[0]), formatNumber(r.CornerRadii[1]),
					formatNumber(r.CornerRadii[2]), formatNumber(r.CornerRadii[3])))
			} else {
				sb.WriteString(fmt.Sprintf("$radius-%s: %spx;\n", id, formatNumber(r.Radius)))
			}
		}
	}

	return sb.String()
}

// variableName builds the stylesheet identifier for a color record:
// <group>-<shade> when the breakdown is known, the sanitized full name
// otherwise.
func variableName(c tokens.Color) string {
	if c.Group != "" && c.Shade != "" {
		return naming.Identifier(c.Group + "-" + c.Shade)
	}
	return naming.Identifier(c.Name)
}

// groupColors buckets records by group (collection, then full name as
// fallbacks) and returns the buckets plus sorted group order.
func groupColors(colors []tokens.Color) (map[string][]tokens.Color, []string) {
	groups := make(map[string][]tokens.Color)
	for _, c := range colors {
		key := c.Group
		if key == "" {
			key = c.Collection
		}
		if key == "" {
			key = c.Name
		}
		groups[key] = append(groups[key], c)
	}

	order := make([]string, 0, len(groups))
	for g := range groups {
		order = append(order, g)
	}
	sort.Strings(order)
	return groups, order
}

// sortShades orders entries within a group: shade labels containing "base"
// first, then descending numeric shade value, alphabetical as tiebreak.
func sortShades(entries []tokens.Color) {
	sort.SliceStable(entries, func(i, j int) bool {
		bi := strings.Contains(entries[i].Shade, "base")
		bj := strings.Contains(entries[j].Shade, "base")
		if bi != bj {
			return bi
		}
		ni, iok := shadeValue(entries[i].Shade)
		nj, jok := shadeValue(entries[j].Shade)
		if iok && jok && ni != nj {
			return ni > nj
		}
		if iok != jok {
			return iok
		}
		return entries[i].Name < entries[j].Name
	})
}

// shadeValue parses the leading numeric portion of a shade label.
func shadeValue(shade string) (float64, bool) {
	end := 0
	for end < len(shade) && (shade[end] >= '0' && shade[end] <= '9' || shade[end] == '.') {
		end++
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(shade[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatNumber renders a float without a trailing ".0" for whole values.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
