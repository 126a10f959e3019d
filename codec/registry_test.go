package codec_test

import (
	"testing"

	"github.com/cocosip/go-segy-amptune/codec"
	_ "github.com/cocosip/go-segy-amptune/segy/ibmfloat"
	_ "github.com/cocosip/go-segy-amptune/segy/ieeefloat"
)

func TestCodecRegistry(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantFound bool
		wantCode  uint16
		wantName  string
	}{
		{
			name:      "Get IBM by format code",
			key:       "1",
			wantFound: true,
			wantCode:  1,
			wantName:  "ibm-float",
		},
		{
			name:      "Get IBM by name",
			key:       "ibm-float",
			wantFound: true,
			wantCode:  1,
			wantName:  "ibm-float",
		},
		{
			name:      "Get IEEE by format code",
			key:       "5",
			wantFound: true,
			wantCode:  5,
			wantName:  "ieee-float",
		},
		{
			name:      "Get IEEE by name",
			key:       "ieee-float",
			wantFound: true,
			wantCode:  5,
			wantName:  "ieee-float",
		},
		{
			name:      "Get non-existent codec",
			key:       "int16",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.Get(tt.key)

			if tt.wantFound {
				if err != nil {
					t.Errorf("Get(%q) unexpected error: %v", tt.key, err)
					return
				}
				if c.FormatCode() != tt.wantCode {
					t.Errorf("Get(%q).FormatCode() = %d, want %d", tt.key, c.FormatCode(), tt.wantCode)
				}
				if c.Name() != tt.wantName {
					t.Errorf("Get(%q).Name() = %q, want %q", tt.key, c.Name(), tt.wantName)
				}
			} else if err != codec.ErrCodecNotFound {
				t.Errorf("Get(%q) error = %v, want %v", tt.key, err, codec.ErrCodecNotFound)
			}
		})
	}
}

func TestForFormatCode(t *testing.T) {
	c, err := codec.ForFormatCode(5)
	if err != nil {
		t.Fatalf("ForFormatCode(5) unexpected error: %v", err)
	}
	if c.Name() != "ieee-float" {
		t.Errorf("ForFormatCode(5).Name() = %q, want %q", c.Name(), "ieee-float")
	}

	if _, err := codec.ForFormatCode(8); err != codec.ErrCodecNotFound {
		t.Errorf("ForFormatCode(8) error = %v, want %v", err, codec.ErrCodecNotFound)
	}
}

func TestListCodecs(t *testing.T) {
	codecs := codec.List()

	if len(codecs) < 2 {
		t.Errorf("List() returned %d codecs, want at least 2", len(codecs))
	}

	seen := make(map[uint16]bool)
	for _, c := range codecs {
		if seen[c.FormatCode()] {
			t.Errorf("List() returned format code %d twice", c.FormatCode())
		}
		seen[c.FormatCode()] = true
	}
	if !seen[1] || !seen[5] {
		t.Errorf("List() missing IBM or IEEE codec, got %v", seen)
	}
}

func TestTraceHelpers(t *testing.T) {
	c, err := codec.Get("ibm-float")
	if err != nil {
		t.Fatal(err)
	}

	samples := []float32{1, -1, 100, 0.25}
	words := make([]uint32, len(samples))
	codec.EncodeTrace(c, samples, words)

	want := []uint32{0x41100000, 0xC1100000, 0x42640000, 0x40400000}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word %d = 0x%08X, want 0x%08X", i, words[i], want[i])
		}
	}

	decoded := make([]float32, len(words))
	codec.DecodeTrace(c, words, decoded)
	for i := range samples {
		if decoded[i] != samples[i] {
			t.Errorf("sample %d = %v, want %v", i, decoded[i], samples[i])
		}
	}
}

func TestPrivateRegistry(t *testing.T) {
	r := codec.NewRegistry()
	if _, err := r.Get("1"); err != codec.ErrCodecNotFound {
		t.Errorf("empty registry Get error = %v, want %v", err, codec.ErrCodecNotFound)
	}
	if len(r.List()) != 0 {
		t.Errorf("empty registry List() = %d codecs, want 0", len(r.List()))
	}
}
