// Package transport frames the binary channel-set payload for URL
// transit: URL-safe unpadded base64 in the fragment of a share URL.
package transport

import (
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/meshkit/chanset/debug"
)

// DefaultPrefix is the share-URL template the encoder prepends to the
// payload fragment.
const DefaultPrefix = "https://meshtastic.org/e/#"

var (
	ErrNoShareURL = errors.New("no share URL in input")
	ErrBadPayload = errors.New("malformed share payload")
)

// The fragment class covers the URL-safe base64 alphabet; plain \w
// would split a fragment at the first '-'.
var urlRx = regexp.MustCompile(`https?://\S+#[\w\-]+`)

// FindURL returns the first share-URL-shaped substring of input, or ""
// if none is present.
func FindURL(input string) string {
	return urlRx.FindString(input)
}

// Decode scans input for the first share-URL-shaped substring and
// decodes its fragment. The fragment uses the URL-safe base64 alphabet;
// trailing padding falls outside the scanned fragment and is ignored.
func Decode(input string) ([]byte, error) {
	url := FindURL(input)
	if url == "" {
		return nil, ErrNoShareURL
	}
	frag := url[strings.LastIndex(url, "#")+1:]
	if debug.Transport() {
		debug.Logf("transport: url %q fragment %q", url, frag)
	}
	b64 := strings.NewReplacer("-", "+", "_", "/").Replace(frag)
	if n := len(b64) % 4; n != 0 {
		b64 += strings.Repeat("=", 4-n)
	}
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return raw, nil
}

// Encode frames raw as a share URL with the default prefix.
func Encode(raw []byte) string {
	return EncodeURL(DefaultPrefix, raw)
}

// EncodeURL frames raw under an explicit URL prefix, which should end in
// the fragment separator.
func EncodeURL(prefix string, raw []byte) string {
	return prefix + base64.RawURLEncoding.EncodeToString(raw)
}
