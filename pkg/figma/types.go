package figma

import "encoding/json"

// FileResponse is the payload of the file endpoint: file metadata, the full
// document tree, and the published style and component tables.
type FileResponse struct {
	Name         string               `json:"name"`
	LastModified string               `json:"lastModified"`
	Version      string               `json:"version"`
	Document     Node                 `json:"document"`
	Styles       map[string]Style     `json:"styles"`
	Components   map[string]Component `json:"components"`
}

// NodesResponse is the payload of the nodes endpoint when fetching specific
// node subtrees, keyed by the requested node IDs.
type NodesResponse struct {
	Name         string              `json:"name"`
	LastModified string              `json:"lastModified"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps one requested node with the style and component tables
// scoped to its subtree.
type NodeData struct {
	Document   Node                 `json:"document"`
	Components map[string]Component `json:"components,omitempty"`
	Styles     map[string]Style     `json:"styles,omitempty"`
}

// Component is a reusable design element published in the file.
// Variant members of a component set carry a ContainingStateGroup.
type Component struct {
	Key                  string      `json:"key"`
	Name                 string      `json:"name"`
	Description          string      `json:"description"`
	ContainingStateGroup *StateGroup `json:"containingStateGroup,omitempty"`
}

// StateGroup identifies the component set a variant belongs to.
type StateGroup struct {
	NodeID   string `json:"nodeId"`
	NodeName string `json:"nodeName"`
}

// Style is a published style table entry. StyleType is one of FILL, TEXT,
// EFFECT or GRID.
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"styleType"`
}

// Node is a single element in the document tree. Fields outside the common
// id/name/type/children set are optional and populated per node kind.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Children []Node `json:"children,omitempty"`

	Fills        []Paint `json:"fills,omitempty"`
	Strokes      []Paint `json:"strokes,omitempty"`
	StrokeWeight float64 `json:"strokeWeight,omitempty"`

	CornerRadius         float64   `json:"cornerRadius,omitempty"`
	RectangleCornerRadii []float64 `json:"rectangleCornerRadii,omitempty"`

	// Styles maps a property kind ("fill", "stroke", "text") to the id of
	// the published style attached to that property on this node.
	Styles map[string]string `json:"styles,omitempty"`

	Characters string     `json:"characters,omitempty"`
	Style      *TypeStyle `json:"style,omitempty"`
}

// Paint is a fill or stroke on a node. The API omits the visible flag when
// the paint is visible, so absence means true.
type Paint struct {
	Type    string  `json:"type"`
	Visible *bool   `json:"visible,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
	Color   *Color  `json:"color,omitempty"`
}

// IsVisible reports whether the paint is rendered.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// Color is an RGBA color with channels as floats in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// TypeStyle carries the text styling properties of a TEXT node.
type TypeStyle struct {
	FontFamily    string  `json:"fontFamily"`
	FontWeight    float64 `json:"fontWeight"`
	FontSize      float64 `json:"fontSize"`
	LineHeightPx  float64 `json:"lineHeightPx"`
	LetterSpacing float64 `json:"letterSpacing"`
}

// ImagesResponse is the payload of the images (render) endpoint: node ID to
// a short-lived download URL.
type ImagesResponse struct {
	Err    string            `json:"err,omitempty"`
	Images map[string]string `json:"images"`
}

// VariablesResponse is the payload of the local variables endpoint.
type VariablesResponse struct {
	Meta VariablesMeta `json:"meta"`
}

// VariablesMeta holds the variable and collection tables.
type VariablesMeta struct {
	Variables           map[string]Variable           `json:"variables"`
	VariableCollections map[string]VariableCollection `json:"variableCollections"`
}

// Variable is a single design variable. Mode values stay raw JSON because a
// value is either a literal (color object, number, string) or an alias.
type Variable struct {
	ID                   string                     `json:"id"`
	Name                 string                     `json:"name"`
	Description          string                     `json:"description"`
	VariableCollectionID string                     `json:"variableCollectionId"`
	ResolvedType         string                     `json:"resolvedType"`
	ValuesByMode         map[string]json.RawMessage `json:"valuesByMode"`
}

// ColorValue decodes the value for the given mode as a color literal.
// Returns false for aliases, missing modes and non-color values.
func (v Variable) ColorValue(modeID string) (Color, bool) {
	raw, ok := v.ValuesByMode[modeID]
	if !ok {
		return Color{}, false
	}
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Type == "VARIABLE_ALIAS" {
		return Color{}, false
	}
	var c Color
	if err := json.Unmarshal(raw, &c); err != nil {
		return Color{}, false
	}
	return c, true
}

// VariableCollection groups variables and defines their modes.
type VariableCollection struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DefaultModeID string `json:"defaultModeId"`
	Modes         []Mode `json:"modes"`
}

// Mode is one value dimension of a variable collection.
type Mode struct {
	ModeID string `json:"modeId"`
	Name   string `json:"name"`
}
