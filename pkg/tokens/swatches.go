package tokens

import (
	"regexp"

	"github.com/amelkic/fe-init/pkg/figma"
)

// swatchNameRe matches swatch instances named colour/<group>/<shade>, with
// the American spelling accepted too.
var swatchNameRe = regexp.MustCompile(`(?i)^colou?r/([^/]+)/([^/]+)$`)

// ExtractSwatches walks the node tree in document order and collects color
// records from swatch instances: INSTANCE or FRAME nodes whose name follows
// the colour/<group>/<shade> convention and which contain a descendant
// literally named "Card" carrying a visible solid fill. The first occurrence
// of a group/shade pair wins.
func ExtractSwatches(root *figma.Node) []Color {
	var colors []Color
	seen := make(map[string]bool)

	var walk func(n *figma.Node)
	walk = func(n *figma.Node) {
		if m := swatchNameRe.FindStringSubmatch(n.Name); m != nil && (n.Type == "INSTANCE" || n.Type == "FRAME") {
			group, shade := m[1], m[2]
			key := group + "/" + shade
			if !seen[key] {
				if hex, ok := cardFill(n); ok {
					seen[key] = true
					colors = append(colors, Color{
						Name:  n.Name,
						Hex:   hex,
						Group: group,
						Shade: shade,
					})
				}
			}
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(root)

	return colors
}

// cardFill finds a descendant named "Card" with a visible solid fill and
// returns its color.
func cardFill(n *figma.Node) (string, bool) {
	for i := range n.Children {
		child := &n.Children[i]
		if child.Name == "Card" {
			if hex, ok := solidFill(child); ok {
				return hex, true
			}
		}
		if hex, ok := cardFill(child); ok {
			return hex, true
		}
	}
	return "", false
}

func solidFill(n *figma.Node) (string, bool) {
	for _, fill := range n.Fills {
		if fill.Type == "SOLID" && fill.Color != nil && fill.IsVisible() {
			c := fill.Color
			return RGBAToHex(c.R, c.G, c.B, c.A), true
		}
	}
	return "", false
}
