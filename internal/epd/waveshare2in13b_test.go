package epd

import (
	"bytes"
	"testing"
)

func TestPlaneLen(t *testing.T) {
	// 122 pixels pad to 16 bytes per row, 250 rows.
	if planeLen != 16*250 {
		t.Errorf("Expected plane length %d, got %d", 16*250, planeLen)
	}
}

func TestSplitChunks(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		limit  int
		counts []int
	}{
		{"empty payload", 0, 2048, nil},
		{"below limit", 100, 2048, []int{100}},
		{"exact limit", 2048, 2048, []int{2048}},
		{"one over", 2049, 2048, []int{2048, 1}},
		{"full frame", 4000, 2048, []int{2048, 1952}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := make([]byte, tt.size)
			for i := range payload {
				payload[i] = byte(i)
			}

			chunks := splitChunks(payload, tt.limit)

			if len(chunks) != len(tt.counts) {
				t.Fatalf("Expected %d chunks, got %d", len(tt.counts), len(chunks))
			}
			var joined []byte
			for i, c := range chunks {
				if len(c) != tt.counts[i] {
					t.Errorf("Chunk %d: expected %d bytes, got %d", i, tt.counts[i], len(c))
				}
				joined = append(joined, c...)
			}
			if !bytes.Equal(joined, payload) {
				t.Error("Chunks do not reassemble to the original payload")
			}
		})
	}
}
