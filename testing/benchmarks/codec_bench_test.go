package benchmarks

import (
	"context"
	"testing"

	"github.com/zoobzio/crate"
	"github.com/zoobzio/crate/json"
	cratetest "github.com/zoobzio/crate/testing"
)

func BenchmarkEncode_String(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = crate.Encode("the quick brown fox", "bench")
	}
}

func BenchmarkEncode_Object(b *testing.B) {
	acct := cratetest.Account{ID: "123", Owner: "alice", Credit: 99.5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = crate.Encode(acct, "bench")
	}
}

func BenchmarkEncode_TypedArray(b *testing.B) {
	arr := make(crate.Float64Array, 1024)
	for i := range arr {
		arr[i] = float64(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = crate.Encode(arr, "bench")
	}
}

func BenchmarkDecode_Object(b *testing.B) {
	data, meta, _ := crate.Encode(cratetest.SampleMap(), "bench")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = crate.Decode(data, meta)
	}
}

func BenchmarkPipeline_Seal(b *testing.B) {
	p := cratetest.TestPipeline(json.New())
	file := cratetest.SampleFile()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Seal(context.Background(), file, "bench")
	}
}

func BenchmarkPipeline_Open(b *testing.B) {
	p := cratetest.TestPipeline(json.New())
	sealed, _ := p.Seal(context.Background(), cratetest.SampleFile(), "bench")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = p.Open(context.Background(), sealed)
	}
}
