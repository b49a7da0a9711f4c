package tokens

import (
	"sort"
	"strings"

	"github.com/amelkic/fe-init/pkg/figma"
)

// ExtractVariables maps the Variables API payload into color records.
// Only COLOR variables with a literal value in their collection's default
// mode are emitted; aliases are skipped. Records carry the collection name
// and the group/shade breakdown of slash-delimited variable names.
// Output is ordered by collection name, then variable name.
func ExtractVariables(resp *figma.VariablesResponse) []Color {
	if resp == nil {
		return nil
	}

	var colors []Color
	seen := make(map[string]bool)

	for _, col := range sortedCollections(resp.Meta.VariableCollections) {
		for _, v := range sortedVariables(resp.Meta.Variables, col.ID) {
			if v.ResolvedType != "COLOR" || seen[v.Name] {
				continue
			}
			c, ok := v.ColorValue(col.DefaultModeID)
			if !ok {
				continue
			}
			seen[v.Name] = true

			rec := Color{
				Name:        v.Name,
				Hex:         RGBAToHex(c.R, c.G, c.B, c.A),
				Description: v.Description,
				Collection:  col.Name,
			}
			if parts := strings.Split(v.Name, "/"); len(parts) >= 2 {
				rec.Shade = parts[len(parts)-1]
				rec.Group = parts[len(parts)-2]
			}
			colors = append(colors, rec)
		}
	}

	return colors
}

func sortedCollections(m map[string]figma.VariableCollection) []figma.VariableCollection {
	out := make([]figma.VariableCollection, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedVariables(m map[string]figma.Variable, collectionID string) []figma.Variable {
	out := make([]figma.Variable, 0, len(m))
	for _, v := range m {
		if v.VariableCollectionID == collectionID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
