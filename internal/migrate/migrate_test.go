package migrate

import (
	"testing"

	"github.com/hupe1980/bitflag/internal/layout"
	"github.com/hupe1980/bitflag/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(l layout.Layout, values []uint32) []uint32 {
	var words []uint32
	for i, v := range values {
		w := l.WordIndex(i)
		words = layout.Grow(words, w)
		words[w] |= l.Truncate(v) << l.BitOffset(i)
	}
	return words
}

func TestReflow(t *testing.T) {
	w4, w8 := layout.MustNew(4), layout.MustNew(8)

	t.Run("narrow truncates", func(t *testing.T) {
		old := encode(w8, []uint32{5, 200, 1, 255})
		got := Reflow(old, w8, w4)

		require.Len(t, got, 1)
		assert.Equal(t, []uint32{5, 8, 1, 15}, []uint32{
			w4.Decode(got, 0), w4.Decode(got, 1), w4.Decode(got, 2), w4.Decode(got, 3),
		})
	})

	t.Run("widen then narrow is lossless", func(t *testing.T) {
		old := encode(w4, []uint32{3, 0, 15})
		wide := Reflow(old, w4, w8)
		back := Reflow(wide, w8, w4)

		assert.Equal(t, old, back)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Reflow(nil, w4, w8))
		assert.Nil(t, Reflow([]uint32{}, w8, w4))
	})

	t.Run("same width copies", func(t *testing.T) {
		old := []uint32{0xDEADBEEF, 0x12345678}
		got := Reflow(old, w4, w4)

		assert.Equal(t, old, got)
		got[0] = 0
		assert.Equal(t, uint32(0xDEADBEEF), old[0], "input must not be aliased")
	})

	t.Run("result length", func(t *testing.T) {
		tests := []struct {
			from, to int
			words    int
			want     int
		}{
			{1, 32, 1, 32},
			{32, 1, 32, 1},
			{8, 4, 3, 2},
			{4, 8, 3, 6},
			{16, 16, 5, 5},
		}
		for _, tt := range tests {
			got := Reflow(make([]uint32, tt.words), layout.MustNew(tt.from), layout.MustNew(tt.to))
			assert.Len(t, got, tt.want, "%d -> %d over %d words", tt.from, tt.to, tt.words)
		}
	})
}

func TestReflowManyWords(t *testing.T) {
	rng := testutil.NewRNG(4711)
	widths := []int{1, 2, 4, 8, 16, 32}

	for _, fw := range widths {
		for _, tw := range widths {
			from, to := layout.MustNew(fw), layout.MustNew(tw)
			values := rng.Fields(257, fw)
			old := encode(from, values)

			got := Reflow(old, from, to)

			for i := range from.Capacity(len(old)) {
				want := to.Truncate(from.Decode(old, i))
				if !assert.Equal(t, want, to.Decode(got, i), "%d -> %d index %d", fw, tw, i) {
					return
				}
			}
		}
	}
}

func BenchmarkReflow(b *testing.B) {
	from, to := layout.MustNew(4), layout.MustNew(8)
	old := make([]uint32, 4096)
	for i := range old {
		old[i] = uint32(i) * 2654435761
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Reflow(old, from, to)
	}
}
