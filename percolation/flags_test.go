package percolation

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteStatus_Bits(t *testing.T) {
	assert.Equal(t, siteStatus(0x01), siteOpen)
	assert.Equal(t, siteStatus(0x02), siteTop)
	assert.Equal(t, siteStatus(0x04), siteBottom)

	s := siteOpen | siteBottom
	assert.True(t, s.has(siteOpen))
	assert.False(t, s.has(siteTop|siteBottom))
	assert.Equal(t, siteBottom, s.boundary())
}

func TestIndex_RowMajor(t *testing.T) {
	p, err := New(4)
	require.NoError(t, err)

	for row := 1; row <= 4; row++ {
		for col := 1; col <= 4; col++ {
			idx, err := p.index(row, col)
			require.NoError(t, err)
			assert.Equal(t, (row-1)*4+(col-1), idx)
		}
	}
}

// TestRootFlags_RollUp checks that after every Open, each component root
// carries exactly the OR of the boundary rows its members sit on.
func TestRootFlags_RollUp(t *testing.T) {
	const n = 9
	r := rand.New(rand.NewSource(3))
	p, err := New(n)
	require.NoError(t, err)

	for step, idx := range r.Perm(n * n) {
		require.NoError(t, p.Open(idx/n+1, idx%n+1))

		want := make(map[int]siteStatus)
		for i, s := range p.status {
			if !s.has(siteOpen) {
				continue
			}
			root := p.forest.Find(i)
			flags := want[root]
			if i/n == 0 {
				flags |= siteTop
			}
			if i/n == n-1 {
				flags |= siteBottom
			}
			want[root] = flags
		}
		for root, flags := range want {
			require.Equal(t, flags, p.status[root].boundary(), "step %d root %d", step, root)
		}
	}
}

func TestNew_Overflow(t *testing.T) {
	_, err := New(math.MaxInt / 2)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
