package iterative

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFib(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		n    int
		want uint64
	}{
		{n: 0, want: 1},
		{n: 1, want: 1},
		{n: 2, want: 2},
		{n: 29, want: 832040},
		{n: 39, want: 102334155},
		{n: 92, want: 12200160415121876738},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, Fib(tc.n), "fib(%d)", tc.n)
	}
}

func BenchmarkFib92(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Fib(92)
	}
}
