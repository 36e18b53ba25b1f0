// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/katalvlaran/linalg/vector"
)

func BenchmarkInnerProduct3(b *testing.B) {
	v, w := vec(b, 8.462, 7.893, -8.187), vec(b, 6.984, -5.975, 4.778)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.InnerProduct(w)
	}
}

func BenchmarkNormalized3(b *testing.B) {
	v := vec(b, 8.813, -1.331, -6.247)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.Normalized()
	}
}

func BenchmarkAngleWith2(b *testing.B) {
	v, w := vec(b, 3.183, -7.627), vec(b, -2.668, 5.319)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.AngleWith(w, vector.Radians)
	}
}

func BenchmarkCrossProduct(b *testing.B) {
	v, w := vec(b, 8.462, 7.893, -8.187), vec(b, 6.984, -5.975, 4.778)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = v.CrossProduct(w)
	}
}
