package tokens

import (
	"github.com/amelkic/fe-init/pkg/figma"
)

// StyleRecords is the output of the published-styles extraction strategy.
type StyleRecords struct {
	Colors  []Color
	Texts   []TextStyle
	Strokes []Border
}

// ExtractStyles resolves the flat style-id table against the node tree.
// The table tells us each style's name and kind; the resolved value comes
// from the first node in document order that has the style attached to its
// fill, stroke or text property.
func ExtractStyles(table map[string]figma.Style, root *figma.Node) StyleRecords {
	var out StyleRecords
	seen := make(map[string]bool)

	var walk func(n *figma.Node)
	walk = func(n *figma.Node) {
		for kind, styleID := range n.Styles {
			style, ok := table[styleID]
			if !ok || seen[styleID] {
				continue
			}

			switch kind {
			case "fill":
				if style.StyleType != "FILL" {
					continue
				}
				if hex, ok := solidFill(n); ok {
					seen[styleID] = true
					out.Colors = append(out.Colors, Color{
						Name:        style.Name,
						Hex:         hex,
						Description: style.Description,
					})
				}
			case "stroke":
				if hex, ok := solidStroke(n); ok {
					seen[styleID] = true
					out.Strokes = append(out.Strokes, Border{
						Name:   style.Name,
						Color:  hex,
						Weight: n.StrokeWeight,
					})
				}
			case "text":
				if style.StyleType != "TEXT" || n.Style == nil {
					continue
				}
				seen[styleID] = true
				out.Texts = append(out.Texts, TextStyle{
					Name:          style.Name,
					FontFamily:    n.Style.FontFamily,
					FontSize:      n.Style.FontSize,
					FontWeight:    n.Style.FontWeight,
					LineHeight:    n.Style.LineHeightPx,
					LetterSpacing: n.Style.LetterSpacing,
				})
			}
		}

		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(root)

	return out
}

// ExtractRadii collects corner-radius records directly from visited nodes,
// uniform or per-corner, first occurrence per node name.
func ExtractRadii(root *figma.Node) []Border {
	var radii []Border
	seen := make(map[string]bool)

	var walk func(n *figma.Node)
	walk = func(n *figma.Node) {
		switch {
		case len(n.RectangleCornerRadii) == 4 && !seen[n.Name]:
			seen[n.Name] = true
			radii = append(radii, Border{
				Name:        n.Name,
				CornerRadii: append([]float64(nil), n.RectangleCornerRadii...),
			})
		case n.CornerRadius > 0 && !seen[n.Name]:
			seen[n.Name] = true
			radii = append(radii, Border{
				Name:   n.Name,
				Radius: n.CornerRadius,
			})
		}

		for i := range n.Children {
			walk(&n.Children[i])
		}
	}
	walk(root)

	return radii
}

func solidStroke(n *figma.Node) (string, bool) {
	for _, stroke := range n.Strokes {
		if stroke.Type == "SOLID" && stroke.Color != nil && stroke.IsVisible() {
			c := stroke.Color
			return RGBAToHex(c.R, c.G, c.B, c.A), true
		}
	}
	return "", false
}
