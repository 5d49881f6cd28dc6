package extract

import "testing"

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		want   string
		wantOK bool
	}{
		{"utf8", []byte("hello 世界"), "hello 世界", true},
		{"gbk", []byte{0xc4, 0xe3, 0xba, 0xc3}, "你好", true},
		{"binary", []byte{0xff, 0xfe, 0x00, 0x01, 0x85}, "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := decodeText(test.data)
			if ok != test.wantOK {
				t.Fatalf("ok = %v, want %v", ok, test.wantOK)
			}
			if got != test.want {
				t.Errorf("decodeText = %q, want %q", got, test.want)
			}
		})
	}
}
