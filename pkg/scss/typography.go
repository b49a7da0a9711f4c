package scss

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/amelkic/fe-init/pkg/config"
	"github.com/amelkic/fe-init/pkg/naming"
	"github.com/amelkic/fe-init/pkg/tokens"
)

// breakpointOrder fixes the emission order for the known device modes;
// unknown modes follow alphabetically.
var breakpointOrder = map[string]int{
	"desktop": 0,
	"mobile":  1,
}

// Typography renders the manual typography token table for one brand as
// reusable mixins, one per style per device breakpoint, parameterized by the
// brand font family and the numeric weight resolved from the weight table.
func Typography(brand, fontFamily string, table map[string]map[string]config.TextTokens, weight func(string) float64, generatedAt time.Time) string {
	var sb strings.Builder
	sb.WriteString(header(generatedAt))

	brandID := naming.Identifier(brand)
	sb.WriteString(fmt.Sprintf("$font-family-%s: '%s', sans-serif;\n\n", brandID, fontFamily))

	for _, mode := range sortedModes(table) {
		styles := table[mode]

		styleNames := make([]string, 0, len(styles))
		for name := range styles {
			styleNames = append(styleNames, name)
		}
		sort.Strings(styleNames)

		for _, styleName := range styleNames {
			tt := styles[styleName]
			sb.WriteString(fmt.Sprintf("@mixin %s-%s {\n", naming.Kebab(styleName), naming.Kebab(mode)))
			sb.WriteString(fmt.Sprintf("  font-family: $font-family-%s;\n", brandID))
			sb.WriteString(fmt.Sprintf("  font-size: %spx;\n", formatNumber(tt.Size)))
			sb.WriteString(fmt.Sprintf("  font-weight: %s;\n", formatNumber(weight(tt.Weight))))
			if tt.LineHeight > 0 {
				sb.WriteString(fmt.Sprintf("  line-height: %spx;\n", formatNumber(tt.LineHeight)))
			}
			if tt.LetterSpacing != 0 {
				sb.WriteString(fmt.Sprintf("  letter-spacing: %spx;\n", formatNumber(tt.LetterSpacing)))
			}
			sb.WriteString("}\n\n")
		}
	}

	return sb.String()
}

// TextStyleMixins renders text styles extracted from the Styles API as
// mixins, one per style.
func TextStyleMixins(styles []tokens.TextStyle, generatedAt time.Time) string {
	var sb strings.Builder
	sb.WriteString(header(generatedAt))

	for _, ts := range styles {
		sb.WriteString(fmt.Sprintf("@mixin %s {\n", naming.Kebab(ts.Name)))
		if ts.FontFamily != "" {
			sb.WriteString(fmt.Sprintf("  font-family: '%s', sans-serif;\n", ts.FontFamily))
		}
		sb.WriteString(fmt.Sprintf("  font-size: %spx;\n", formatNumber(ts.FontSize)))
		if ts.FontWeight > 0 {
			sb.WriteString(fmt.Sprintf("  font-weight: %s;\n", formatNumber(ts.FontWeight)))
		}
		if ts.LineHeight > 0 {
			sb.WriteString(fmt.Sprintf("  line-height: %spx;\n", formatNumber(ts.LineHeight)))
		}
		if ts.LetterSpacing != 0 {
			sb.WriteString(fmt.Sprintf("  letter-spacing: %spx;\n", formatNumber(ts.LetterSpacing)))
		}
		sb.WriteString("}\n\n")
	}

	return sb.String()
}

func sortedModes(table map[string]map[string]config.TextTokens) []string {
	modes := make([]string, 0, len(table))
	for mode := range table {
		modes = append(modes, mode)
	}
	sort.Slice(modes, func(i, j int) bool {
		oi, iok := breakpointOrder[modes[i]]
		oj, jok := breakpointOrder[modes[j]]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		default:
			return modes[i] < modes[j]
		}
	})
	return modes
}
