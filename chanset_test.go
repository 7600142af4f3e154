package chanset

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/meshkit/chanset/encode"
	"github.com/meshkit/chanset/ir"
	"github.com/meshkit/chanset/parse"
	"github.com/meshkit/chanset/transport"
)

func testDocument() *ir.Node {
	doc := ir.Document()
	ch := ir.Object()
	ch.Set("name", ir.FromString("Primary"))
	ch.Set("psk", ir.FromBytes([]byte{0xd6, 0x4e, 0xe4, 0x35, 0x1f, 0x43, 0x9b, 0x92}))
	ch.Set("channel_num", ir.FromInt(3))
	ch.Set("uplink_enabled", ir.FromBool(true))
	ch.Set("module_settings", ir.Object().Set("position_precision", ir.FromInt(32)))
	doc.Channels().Append(ch)

	lora := doc.Lora()
	lora.Set("usePreset", ir.FromBool(true))
	// zero-valued proto3 fields (e.g. LONG_FAST) drop off the wire, so
	// the fixture sticks to values that survive the binary leg
	lora.Set("modemPreset", ir.FromString("LONG_MODERATE"))
	lora.Set("region", ir.FromString("US"))
	lora.Set("hopLimit", ir.FromInt(3))
	lora.Set("txEnabled", ir.FromBool(true))
	lora.Set("frequencyOffset", ir.FromFloat(0.5))
	return doc
}

func TestURLRoundTrip(t *testing.T) {
	doc := testDocument()
	url, err := Encode(doc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(url, transport.DefaultPrefix) {
		t.Fatalf("url %q lacks default prefix", url)
	}
	got, err := Decode(url)
	if err != nil {
		t.Fatal(err)
	}
	Normalize(doc)
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("url round trip (-want +got):\n%s", diff)
	}
}

func TestTextRoundTripIdentity(t *testing.T) {
	// normalize(parse(serialize(d))) == normalize(d), with no binary leg
	doc := testDocument()
	text, err := encode.Text(doc)
	if err != nil {
		t.Fatal(err)
	}
	got, err := parse.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	Normalize(got)
	Normalize(doc)
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("text round trip (-want +got):\n%s", diff)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	url, err := Encode(testDocument())
	if err != nil {
		t.Fatal(err)
	}
	d1, err := DecodeToYAML(url)
	if err != nil {
		t.Fatal(err)
	}
	url2, err := EncodeFromYAML(d1)
	if err != nil {
		t.Fatal(err)
	}
	// repeated decodes of equivalent input are byte-identical
	d2, err := DecodeToYAML(url2)
	if err != nil {
		t.Fatal(err)
	}
	if string(d1) != string(d2) {
		t.Errorf("canonical YAML not stable:\n%s\nvs:\n%s", d1, d2)
	}
}

func TestDecodeURLInProse(t *testing.T) {
	url, err := Encode(testDocument())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode("scan this: " + url + " thanks"); err != nil {
		t.Errorf("Decode with surrounding prose: %v", err)
	}
}

func TestWithURLPrefix(t *testing.T) {
	url, err := Encode(testDocument(), WithURLPrefix("https://example.net/c/#"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(url, "https://example.net/c/#") {
		t.Errorf("url = %q", url)
	}
	if _, err := Decode(url); err != nil {
		t.Errorf("Decode of re-prefixed url: %v", err)
	}
}

func TestDecodeFailureStages(t *testing.T) {
	if _, err := Decode("nothing here"); !errors.Is(err, transport.ErrNoShareURL) {
		t.Errorf("got %v, want ErrNoShareURL", err)
	}
	// a fragment that is not valid base64 at all
	if _, err := Decode("https://x/#a"); err == nil {
		t.Error("1-character fragment must fail")
	}
}

type stubCodec struct {
	text []byte
	raw  []byte
}

func (s *stubCodec) Marshal(text []byte) ([]byte, error) {
	s.text = append([]byte(nil), text...)
	return s.raw, nil
}

func (s *stubCodec) Unmarshal([]byte) ([]byte, error) {
	return s.text, nil
}

func TestWithCodec(t *testing.T) {
	stub := &stubCodec{raw: []byte{1, 2, 3}}
	url, err := Encode(testDocument(), WithCodec(stub))
	if err != nil {
		t.Fatal(err)
	}
	if url != transport.DefaultPrefix+"AQID" {
		t.Errorf("url = %q", url)
	}
	got, err := Decode(url, WithCodec(stub))
	if err != nil {
		t.Fatal(err)
	}
	want := testDocument()
	Normalize(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stub codec round trip (-want +got):\n%s", diff)
	}
}
