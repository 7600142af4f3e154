package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/meshkit/chanset/ir"
	"github.com/meshkit/chanset/psk"
	"github.com/meshkit/chanset/token"
)

func TestParseChannels(t *testing.T) {
	in := `settings {
  psk: "\001\002"
  name: "Primary"
  uplink_enabled: true
}
settings {
  channel_num: 2
  module_settings {
    position_precision: 32
  }
}
`
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	channels := doc.Channels()
	if channels.Len() != 2 {
		t.Fatalf("got %d channels, want 2", channels.Len())
	}
	ch := channels.Values[0]
	// parse order is source order; reordering is not the parser's job
	if diff := cmp.Diff([]string{"psk", "name", "uplink_enabled"}, ch.Fields); diff != "" {
		t.Errorf("channel 0 fields (-want +got):\n%s", diff)
	}
	key := ch.Get("psk")
	if key.Type != ir.BytesType {
		t.Fatalf("psk type %s, want Bytes", key.Type)
	}
	if diff := cmp.Diff([]byte{1, 2}, key.Bytes); diff != "" {
		t.Errorf("psk bytes (-want +got):\n%s", diff)
	}
	if got := ch.Get("name"); got.Type != ir.StringType || got.String != "Primary" {
		t.Errorf("name = %+v", got)
	}
	sub := channels.Values[1].Get("module_settings")
	if sub == nil || sub.Type != ir.ObjectType {
		t.Fatalf("module_settings = %+v", sub)
	}
	// nested non-LoRa keys keep their parsed spelling
	if v := sub.Get("position_precision"); v == nil || *v.Int64 != 32 {
		t.Errorf("position_precision = %+v", v)
	}
	if doc.Lora().Len() != 0 {
		t.Errorf("lora map should be empty, got %v", doc.Lora().Fields)
	}
}

func TestParseLoraCamelCase(t *testing.T) {
	in := `lora_config {
  use_preset: true
  modem_preset: LONG_FAST
  region: US
  tx_power: 30
  frequency_offset: 0.5
}
`
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	lora := doc.Lora()
	if diff := cmp.Diff(
		[]string{"usePreset", "modemPreset", "region", "txPower", "frequencyOffset"},
		lora.Fields,
	); diff != "" {
		t.Errorf("lora fields (-want +got):\n%s", diff)
	}
	if v := lora.Get("modemPreset"); v.Type != ir.StringType || v.String != "LONG_FAST" {
		t.Errorf("modemPreset = %+v", v)
	}
	if v := lora.Get("region"); v.Type != ir.StringType || v.String != "US" {
		t.Errorf("region = %+v", v)
	}
	if v := lora.Get("txPower"); v.Type != ir.NumberType || *v.Int64 != 30 {
		t.Errorf("txPower = %+v", v)
	}
	if v := lora.Get("frequencyOffset"); v.Type != ir.NumberType || *v.Float64 != 0.5 {
		t.Errorf("frequencyOffset = %+v", v)
	}
}

func TestParseBlankAndEmpty(t *testing.T) {
	doc, err := Parse([]byte("\n\n  \n"))
	if err != nil {
		t.Fatal(err)
	}
	// both fixed slots present even for empty input
	if doc.Channels() == nil || doc.Lora() == nil {
		t.Fatalf("fixed slots missing: %v", doc.Fields)
	}
	if doc.Fields[0] != "channels" || doc.Fields[1] != "config" {
		t.Errorf("root slot order %v", doc.Fields)
	}
}

type parseErrTest struct {
	in string
	e  error
}

func TestParseErrors(t *testing.T) {
	pts := []parseErrTest{
		{in: "junk line", e: token.ErrGrammar},
		{in: "}", e: token.ErrGrammar},
		{in: "settings {\n", e: token.ErrGrammar},
		{in: "settings {\n}\n}\n", e: token.ErrGrammar},
		{in: "name: \"x\"\n", e: token.ErrGrammar},
		{in: "module_settings {\n}\n", e: token.ErrGrammar},
		{in: "settings {\n  psk: \\001\n}\n", e: psk.ErrEncoding},
		{in: "settings {\n  psk: \"\\n\"\n}\n", e: psk.ErrEncoding},
		{in: "settings {\n  psk: \"\\999\"\n}\n", e: psk.ErrEncoding},
	}
	for _, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if !errors.Is(err, pt.e) {
			t.Errorf("Parse(%q): got %v, want %v", pt.in, err, pt.e)
		}
	}
}

func TestParseDuplicateScalarLastWins(t *testing.T) {
	in := "lora_config {\n  hop_limit: 1\n  hop_limit: 7\n}\n"
	doc, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	lora := doc.Lora()
	if lora.Len() != 1 || *lora.Get("hopLimit").Int64 != 7 {
		t.Errorf("lora = %v", lora.Fields)
	}
}
