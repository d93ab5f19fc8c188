package command

import (
	"encoding/json"
)

const (
	ValueTypeTextMetrics = "TextMetrics"
	ValueTypeStore       = "storeValue"
)

// CanvasValue is one entry of the round-trip channel: the executor emits a
// batch of these some time after executing a frame's MeasureText and Store
// commands, and the next frame's render consumes them. Multiple entries may
// share a label (one TextMetrics per measured unit).
type CanvasValue struct {
	Label     string          `json:"label"`
	ValueType string          `json:"valuetype"`
	Value     json.RawMessage `json:"value"`
}

// SwapValue is the payload a text-swap Store command persists: the text the
// wrap decision was computed from, the wrapped result, and a usage tag so
// unrelated stored values under the same label are not misread.
type SwapValue struct {
	OriginText  string `json:"originText"`
	ChangedText string `json:"changedText"`
	Usage       string `json:"usage"`
}

// SwapUsage tags stored values written by the text reflow engine.
const SwapUsage = "textSwap"

type textMetrics struct {
	Width float64 `json:"width"`
}

// NewTextMetricsValue builds the executor-side response to a MeasureText
// command.
func NewTextMetricsValue(label string, width float64) CanvasValue {
	raw, _ := json.Marshal(textMetrics{Width: width})
	return CanvasValue{Label: label, ValueType: ValueTypeTextMetrics, Value: raw}
}

// NewStoreValue builds the executor-side echo of a stored value.
func NewStoreValue(label string, value json.RawMessage) CanvasValue {
	return CanvasValue{Label: label, ValueType: ValueTypeStore, Value: value}
}

// Metrics collects the measured widths for a label, in batch order. Entries
// whose payload does not decode as {width: number} are skipped; if nothing
// usable matched, ok is false and the caller falls back to re-measuring.
func Metrics(values []CanvasValue, label string) (widths []float64, ok bool) {
	for _, v := range values {
		if v.Label != label || v.ValueType != ValueTypeTextMetrics {
			continue
		}
		var m textMetrics
		if err := json.Unmarshal(v.Value, &m); err != nil {
			continue
		}
		widths = append(widths, m.Width)
	}
	return widths, len(widths) > 0
}

// StoredSwap finds the text-swap decision stored under a label. A payload
// that fails to decode, or whose usage tag is not SwapUsage, is treated as
// absent: the label then re-enters the unmeasured path rather than erroring.
func StoredSwap(values []CanvasValue, label string) (SwapValue, bool) {
	for _, v := range values {
		if v.Label != label || v.ValueType != ValueTypeStore {
			continue
		}
		var s SwapValue
		if err := json.Unmarshal(v.Value, &s); err != nil {
			continue
		}
		if s.Usage != SwapUsage {
			continue
		}
		return s, true
	}
	return SwapValue{}, false
}

// DecodeValues parses an inbound value batch. Entries that are not valid
// JSON objects with the expected fields are dropped silently; a completely
// malformed batch decodes to nil, which renders as "no values arrived".
func DecodeValues(data []byte) []CanvasValue {
	var values []CanvasValue
	if err := json.Unmarshal(data, &values); err != nil {
		return nil
	}
	kept := values[:0]
	for _, v := range values {
		if v.Label == "" || v.ValueType == "" {
			continue
		}
		kept = append(kept, v)
	}
	return kept
}
