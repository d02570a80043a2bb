// utils/base64.go
package utils

import (
	"encoding/base64"
	"strings"
)

// Base64ByteSize estimates the decoded size of a base64 payload without
// decoding it: length * 3/4, padding ignored. Upload limits are checked
// against this figure before any decode work happens.
func Base64ByteSize(b64 string) int64 {
	if i := strings.IndexByte(b64, ','); i >= 0 && strings.HasPrefix(b64, "data:") {
		b64 = b64[i+1:]
	}
	return int64(len(b64)) * 3 / 4
}

// DecodeBase64 decodes a payload that may carry a data-URL prefix.
func DecodeBase64(b64 string) ([]byte, string, error) {
	mime := ""
	if strings.HasPrefix(b64, "data:") {
		if i := strings.IndexByte(b64, ','); i >= 0 {
			head := b64[5:i]
			if j := strings.IndexByte(head, ';'); j >= 0 {
				mime = head[:j]
			} else {
				mime = head
			}
			b64 = b64[i+1:]
		}
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, "", err
	}
	return data, mime, nil
}
