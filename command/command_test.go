package command

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEncodeWireShape(t *testing.T) {
	cmds := []Command{
		Save{},
		FillStyle{Style: "red"},
		MoveTo{X: 1, Y: 2},
		FillText{Text: "hi", X: 3, Y: 4},
		Restore{},
	}
	data, err := Encode(cmds)
	if err != nil {
		t.Fatal(err)
	}

	var wires []map[string]any
	if err := json.Unmarshal(data, &wires); err != nil {
		t.Fatal(err)
	}
	if len(wires) != len(cmds) {
		t.Fatalf("expected %d wire entries, got %d", len(cmds), len(wires))
	}

	if wires[0]["type"] != "function" || wires[0]["name"] != "save" {
		t.Errorf("save encoded as %v", wires[0])
	}
	if wires[1]["type"] != "field" || wires[1]["name"] != "fillStyle" || wires[1]["value"] != "red" {
		t.Errorf("fillStyle encoded as %v", wires[1])
	}
	args, ok := wires[2]["args"].([]any)
	if !ok || len(args) != 2 || args[0] != 1.0 || args[1] != 2.0 {
		t.Errorf("moveTo args encoded as %v", wires[2]["args"])
	}
}

func TestEncodeTextMaxWidth(t *testing.T) {
	data, err := Encode([]Command{FillText{Text: "x", X: 0, Y: 0, MaxWidth: 50}})
	if err != nil {
		t.Fatal(err)
	}
	var wires []wireCommand
	if err := json.Unmarshal(data, &wires); err != nil {
		t.Fatal(err)
	}
	if len(wires[0].Args) != 4 {
		t.Errorf("constrained fillText should carry maxWidth, got args %v", wires[0].Args)
	}

	data, _ = Encode([]Command{FillText{Text: "x", X: 0, Y: 0}})
	json.Unmarshal(data, &wires)
	if len(wires[0].Args) != 3 {
		t.Errorf("unconstrained fillText should omit maxWidth, got args %v", wires[0].Args)
	}
}

func TestEncodeStorePayload(t *testing.T) {
	store := Store{Label: "L", Value: SwapValue{OriginText: "a", ChangedText: "b", Usage: SwapUsage}}
	data, err := Encode([]Command{store})
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{`"storeValue"`, `"originText":"a"`, `"changedText":"b"`, `"textSwap"`} {
		if !strings.Contains(text, want) {
			t.Errorf("encoded store missing %s: %s", want, text)
		}
	}
}

func TestCommandStrings(t *testing.T) {
	cases := map[Command]string{
		Save{}:                     "Save()",
		MoveTo{X: 1, Y: 2}:         "MoveTo(x=1.00, y=2.00)",
		FillStyle{Style: "red"}:    "FillStyle(style='red')",
		MeasureText{Label: "L", Text: "w"}: "MeasureText(label='L', text='w')",
	}
	for cmd, want := range cases {
		if got := cmd.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
