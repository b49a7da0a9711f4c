package tokens

import (
	"encoding/json"
	"testing"

	"github.com/amelkic/fe-init/pkg/figma"
)

func TestExtractVariables(t *testing.T) {
	var resp figma.VariablesResponse
	err := json.Unmarshal([]byte(`{
		"meta": {
			"variableCollections": {
				"VC:1": {"id": "VC:1", "name": "Primitives", "defaultModeId": "m1",
					"modes": [{"modeId": "m1", "name": "Default"}]}
			},
			"variables": {
				"V:1": {"id": "V:1", "name": "colour/red/500", "resolvedType": "COLOR",
					"variableCollectionId": "VC:1",
					"valuesByMode": {"m1": {"r": 1, "g": 0, "b": 0, "a": 1}}},
				"V:2": {"id": "V:2", "name": "colour/red/alias", "resolvedType": "COLOR",
					"variableCollectionId": "VC:1",
					"valuesByMode": {"m1": {"type": "VARIABLE_ALIAS", "id": "V:1"}}},
				"V:3": {"id": "V:3", "name": "spacing/md", "resolvedType": "FLOAT",
					"variableCollectionId": "VC:1",
					"valuesByMode": {"m1": 16}}
			}
		}
	}`), &resp)
	if err != nil {
		t.Fatal(err)
	}

	colors := ExtractVariables(&resp)

	if len(colors) != 1 {
		t.Fatalf("got %d colors, want 1 (aliases and non-colors skipped): %+v", len(colors), colors)
	}
	c := colors[0]
	if c.Name != "colour/red/500" || c.Hex != "#FF0000" {
		t.Errorf("color = %+v", c)
	}
	if c.Collection != "Primitives" || c.Group != "red" || c.Shade != "500" {
		t.Errorf("breakdown = collection %q group %q shade %q", c.Collection, c.Group, c.Shade)
	}
}

func TestExtractVariablesNil(t *testing.T) {
	if got := ExtractVariables(nil); got != nil {
		t.Errorf("ExtractVariables(nil) = %+v, want nil", got)
	}
}
