package service

import (
	"bytes"
	"encoding/base64"
	"testing"
)

var testPNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x02")

func TestDecodePreview(t *testing.T) {
	std := base64.StdEncoding.EncodeToString(testPNG)
	raw := base64.RawStdEncoding.EncodeToString(testPNG)

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "plain base64", in: std},
		{name: "unpadded", in: raw},
		{name: "data url", in: "data:image/png;base64," + std},
		{name: "wrapped lines", in: std[:10] + "\n" + std[10:20] + "\r\n " + std[20:]},
		{name: "garbage", in: "!!not-base64!!", wantErr: true},
		{name: "data url without base64 marker", in: "data:image/png," + std, wantErr: true},
		{name: "jpeg", in: base64.StdEncoding.EncodeToString([]byte("\xff\xd8\xff\xe0\x00\x10JFIF")), wantErr: true},
		{name: "empty payload", in: "data:image/png;base64,", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePreview(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodePreview() accepted %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodePreview() error = %v", err)
			}
			if !bytes.Equal(got, testPNG) {
				t.Errorf("DecodePreview() = %x, want %x", got, testPNG)
			}
		})
	}
}
