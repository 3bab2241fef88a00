// Package testing provides shared test utilities for voice module tests.
package testing

import (
	"crypto/hmac"
	"crypto/sha1" // #nosec G505 -- the platform signs webhooks with HMAC-SHA1
	"encoding/base64"
	"net/url"
	"sort"
)

// SignWebhook computes the X-Twilio-Signature a platform request to fullURL with
// params would carry: base64(HMAC-SHA1(fullURL + sorted key/value pairs)).
// Only the first value of a repeated key is signed, matching the validator.
func SignWebhook(authToken, fullURL string, params url.Values) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	payload := fullURL
	for _, key := range keys {
		payload += key + params.Get(key)
	}

	mac := hmac.New(sha1.New, []byte(authToken))
	_, _ = mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
