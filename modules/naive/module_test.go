package naive

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
		{n: 3, want: 3},
		{n: 10, want: 89},
		{n: 29, want: 832040},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, Fib(tc.n), "fib(%d)", tc.n)
	}
}

func TestFib_NegativeInputIsBaseCase(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint64(1), Fib(-5))
}

func BenchmarkFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Fib(20)
	}
}
