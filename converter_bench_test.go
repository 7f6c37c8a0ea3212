package textconv

import (
	"reflect"
	"testing"
)

func BenchmarkConvert_ListOfInt(b *testing.B) {
	target := ListOf(reflect.TypeOf(0))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := Convert("1, 2, 3, 4, 5, 6, 7, 8", target, "field")
		if err != nil {
			b.Fatal(err)
		}
		if len(result.([]int)) != 8 {
			b.Fatal("unexpected length")
		}
	}
}

func BenchmarkConvert_MapOfStringInt(b *testing.B) {
	target := MapOf(nil, reflect.TypeOf(0))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := Convert("a=1\nb=2\nc=3\nd=4", target, "field")
		if err != nil {
			b.Fatal(err)
		}
		if len(result.(map[string]int)) != 4 {
			b.Fatal("unexpected length")
		}
	}
}
