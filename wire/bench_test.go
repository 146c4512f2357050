package wire_test

import (
	"testing"

	"github.com/katalvlaran/perplexing/wire"
)

func BenchmarkBuild(b *testing.B) {
	for _, piece := range []wire.Piece{wire.Uncut, wire.Cut, wire.Copper} {
		req := request(5, piece, wire.Wire, 1)
		b.Run(piece.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := wire.Build(req); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
