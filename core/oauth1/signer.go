// ABOUTME: Two-legged OAuth 1.0a HMAC-SHA1 request signing
// ABOUTME: Produces Authorization header values for authenticated catalog requests

package oauth1

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const nonceLength = 32

const nonceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Signer computes OAuth 1.0a Authorization headers using HMAC-SHA1 with an
// empty token secret (two-legged flow).
//
// Signing has no I/O and never fails. An empty consumer key or secret still
// produces a header; the server rejects the signature, which matches the
// "no credentials configured, empty results" contract of the calling provider.
type Signer struct {
	consumerKey    string
	consumerSecret string
	nonceSource    func() string
	clock          func() time.Time
}

// NewSigner creates a signer for the given consumer credential pair.
func NewSigner(consumerKey, consumerSecret string) *Signer {
	return &Signer{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		nonceSource:    randomNonce,
		clock:          time.Now,
	}
}

// SetNonceSource overrides the nonce generator. Tests use this to make
// signatures reproducible.
func (s *Signer) SetNonceSource(source func() string) {
	s.nonceSource = source
}

// SetClock overrides the timestamp source. Tests use this to make
// signatures reproducible.
func (s *Signer) SetClock(clock func() time.Time) {
	s.clock = clock
}

// AuthorizationHeader signs a request and returns the full Authorization
// header value ("OAuth ..."). The query parameters participate in the
// signature base string but are not emitted in the header.
func (s *Signer) AuthorizationHeader(method, baseURL string, query map[string]string) string {
	nonce := s.nonceSource()
	timestamp := strconv.FormatInt(s.clock().Unix(), 10)
	return s.authorizationHeaderAt(method, baseURL, query, nonce, timestamp)
}

// authorizationHeaderAt performs the signature with a fixed nonce and
// timestamp. All signing paths funnel through here.
func (s *Signer) authorizationHeaderAt(method, baseURL string, query map[string]string, nonce, timestamp string) string {
	oauthKeys := []string{
		"oauth_consumer_key",
		"oauth_signature_method",
		"oauth_timestamp",
		"oauth_nonce",
		"oauth_version",
	}
	oauthParams := map[string]string{
		"oauth_consumer_key":     s.consumerKey,
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_timestamp":        timestamp,
		"oauth_nonce":            nonce,
		"oauth_version":          "1.0",
	}

	// Merge request query parameters with the oauth parameter set
	merged := make([][2]string, 0, len(query)+len(oauthParams))
	for k, v := range query {
		merged = append(merged, [2]string{k, v})
	}
	for _, k := range oauthKeys {
		merged = append(merged, [2]string{k, oauthParams[k]})
	}

	// Dictionary sort of the (key, value) pairs, ties broken by value
	sort.Slice(merged, func(i, j int) bool {
		if merged[i][0] != merged[j][0] {
			return merged[i][0] < merged[j][0]
		}
		return merged[i][1] < merged[j][1]
	})

	pairs := make([]string, 0, len(merged))
	for _, kv := range merged {
		pairs = append(pairs, PercentEncode(kv[0])+"="+PercentEncode(kv[1]))
	}
	paramString := strings.Join(pairs, "&")

	baseString := strings.ToUpper(method) + "&" + PercentEncode(baseURL) + "&" + PercentEncode(paramString)

	// Empty token secret for the two-legged flow
	signingKey := PercentEncode(s.consumerSecret) + "&"

	mac := hmac.New(sha1.New, []byte(signingKey))
	mac.Write([]byte(baseString))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	headerParams := make([]string, 0, len(oauthKeys)+1)
	for _, k := range oauthKeys {
		headerParams = append(headerParams, fmt.Sprintf("%s=%q", k, PercentEncode(oauthParams[k])))
	}
	headerParams = append(headerParams, fmt.Sprintf("oauth_signature=%q", PercentEncode(signature)))

	return "OAuth " + strings.Join(headerParams, ", ")
}

// PercentEncode escapes a string per RFC 3986. The unreserved set is letters,
// digits, '-', '.', '_' and '~'; everything else is percent-escaped byte-wise,
// including space as %20 (never '+').
func PercentEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteString(fmt.Sprintf("%%%02X", c))
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

// randomNonce returns a fresh 32-character alphanumeric nonce.
func randomNonce() string {
	buf := make([]byte, nonceLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand is unavailable only on a broken platform; fall back
		// to a constant rather than failing the signing path.
		return strings.Repeat("0", nonceLength)
	}

	out := make([]byte, nonceLength)
	for i, b := range buf {
		out[i] = nonceAlphabet[int(b)%len(nonceAlphabet)]
	}
	return string(out)
}
