package percolation

// siteStatus packs the per-site facts into one byte.
// At a component root, siteTop and siteBottom describe the whole component;
// at any other site they are only what was known when it was last merged.
type siteStatus uint8

const (
	siteOpen   siteStatus = 1 << iota // site has been opened
	siteTop                           // component reaches row 1
	siteBottom                        // component reaches row N
)

// has reports whether every bit of mask is set.
func (s siteStatus) has(mask siteStatus) bool {
	return s&mask == mask
}

// boundary keeps only the top/bottom bits.
func (s siteStatus) boundary() siteStatus {
	return s & (siteTop | siteBottom)
}

// neighborOffsets lists the 4-directional (row, col) deltas: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
