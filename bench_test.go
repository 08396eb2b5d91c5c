package fibext

import "testing"

func BenchmarkGeneratorNext_Uint32(b *testing.B) {
	gen := New[uint32](Wrapping)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		gen.Next()
	}
}

func BenchmarkGeneratorNext_Uint64(b *testing.B) {
	gen := New[uint64](Wrapping)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		gen.Next()
	}
}

func BenchmarkGeneratorNext_Uint128(b *testing.B) {
	gen := NewUint128(Wrapping)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		gen.Next()
	}
}

func BenchmarkGeneratorNext_Big(b *testing.B) {
	gen := NewBig(Wrapping)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		gen.Next()
	}
}

func BenchmarkFill_Uint64(b *testing.B) {
	buf := make([]uint64, 90)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := Fill(buf); err != nil {
			b.Fatal(err)
		}
	}
}
