package util

import (
	"errors"
	"net/http"
	"strings"
)

// ValidateMimeType sniffs data and checks it against allowed prefixes or full
// types such as "image/" or "image/png".
func ValidateMimeType(data []byte, allowedTypes []string) (string, error) {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}

	mimeType := http.DetectContentType(head)

	for _, allowed := range allowedTypes {
		if strings.HasPrefix(mimeType, allowed) || mimeType == allowed {
			return mimeType, nil
		}
	}

	return mimeType, errors.New("invalid file type: " + mimeType)
}
