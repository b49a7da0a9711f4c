package tokens

import (
	"testing"

	"github.com/amelkic/fe-init/pkg/figma"
)

func TestExtractStyles(t *testing.T) {
	table := map[string]figma.Style{
		"S:fill": {Key: "k1", Name: "Brand/Primary", StyleType: "FILL", Description: "main brand color"},
		"S:text": {Key: "k2", Name: "Body/Regular", StyleType: "TEXT"},
		"S:strk": {Key: "k3", Name: "Divider", StyleType: "FILL"},
	}

	root := mustNode(t, `{
		"id": "0:0", "name": "Document", "type": "DOCUMENT",
		"children": [
			{
				"id": "1:1", "name": "Button", "type": "RECTANGLE",
				"styles": {"fill": "S:fill"},
				"fills": [{"type": "SOLID", "color": {"r": 0, "g": 0.5, "b": 1, "a": 1}}]
			},
			{
				"id": "1:2", "name": "Button Copy", "type": "RECTANGLE",
				"styles": {"fill": "S:fill"},
				"fills": [{"type": "SOLID", "color": {"r": 1, "g": 1, "b": 1, "a": 1}}]
			},
			{
				"id": "2:1", "name": "Paragraph", "type": "TEXT",
				"styles": {"text": "S:text"},
				"style": {"fontFamily": "Inter", "fontSize": 16, "fontWeight": 400, "lineHeightPx": 24, "letterSpacing": 0.2}
			},
			{
				"id": "3:1", "name": "Rule", "type": "LINE",
				"styles": {"stroke": "S:strk"},
				"strokeWeight": 2,
				"strokes": [{"type": "SOLID", "color": {"r": 0, "g": 0, "b": 0, "a": 1}}]
			}
		]
	}`)

	got := ExtractStyles(table, root)

	if len(got.Colors) != 1 {
		t.Fatalf("got %d colors, want 1 (first attachment wins)", len(got.Colors))
	}
	if got.Colors[0].Name != "Brand/Primary" || got.Colors[0].Hex != "#0080FF" {
		t.Errorf("color = %+v", got.Colors[0])
	}
	if got.Colors[0].Description != "main brand color" {
		t.Errorf("description = %q", got.Colors[0].Description)
	}

	if len(got.Texts) != 1 {
		t.Fatalf("got %d text styles, want 1", len(got.Texts))
	}
	ts := got.Texts[0]
	if ts.Name != "Body/Regular" || ts.FontFamily != "Inter" || ts.FontSize != 16 || ts.LineHeight != 24 {
		t.Errorf("text style = %+v", ts)
	}

	if len(got.Strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(got.Strokes))
	}
	if got.Strokes[0].Name != "Divider" || got.Strokes[0].Color != "#000000" || got.Strokes[0].Weight != 2 {
		t.Errorf("stroke = %+v", got.Strokes[0])
	}
}

func TestExtractStylesUnknownID(t *testing.T) {
	root := mustNode(t, `{
		"id": "1:1", "name": "Orphan", "type": "RECTANGLE",
		"styles": {"fill": "S:gone"},
		"fills": [{"type": "SOLID", "color": {"r": 0, "g": 0, "b": 0, "a": 1}}]
	}`)

	got := ExtractStyles(map[string]figma.Style{}, root)
	if len(got.Colors)+len(got.Texts)+len(got.Strokes) != 0 {
		t.Errorf("unknown style ids should produce no records: %+v", got)
	}
}

func TestExtractRadii(t *testing.T) {
	root := mustNode(t, `{
		"id": "0:0", "name": "Document", "type": "DOCUMENT",
		"children": [
			{"id": "1:1", "name": "Card", "type": "RECTANGLE", "cornerRadius": 8},
			{"id": "1:2", "name": "Card", "type": "RECTANGLE", "cornerRadius": 16},
			{"id": "2:1", "name": "Toast", "type": "RECTANGLE", "rectangleCornerRadii": [4, 4, 0, 0]},
			{"id": "3:1", "name": "Square", "type": "RECTANGLE"}
		]
	}`)

	radii := ExtractRadii(root)

	if len(radii) != 2 {
		t.Fatalf("got %d radius records, want 2: %+v", len(radii), radii)
	}
	if radii[0].Name != "Card" || radii[0].Radius != 8 {
		t.Errorf("radii[0] = %+v, want first Card with radius 8", radii[0])
	}
	if radii[1].Name != "Toast" || len(radii[1].CornerRadii) != 4 || radii[1].CornerRadii[2] != 0 {
		t.Errorf("radii[1] = %+v, want per-corner Toast record", radii[1])
	}
}
