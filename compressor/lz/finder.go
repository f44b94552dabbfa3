package lz

// A MatchFinder looks for the longest earlier occurrence of the bytes at a
// position. Implementations must agree on the result so that the choice of
// finder never changes the token stream.
type MatchFinder interface {
	// FindMatch returns the distance and length of the longest match for
	// data[pos:limit] that starts inside the window behind pos. The match
	// may run into pos itself. Among equally long matches the one furthest
	// back wins. A zero length means nothing matched.
	FindMatch(data []byte, pos, limit int) (distance, length int)

	// Reset clears any state built for a previous input.
	Reset()
}

// matchLength counts how many bytes starting at j repeat starting at i,
// stopping at limit. j < i, so the source may overlap the destination.
func matchLength(data []byte, j, i, limit int) int {
	k := 0
	for i+k < limit && data[j+k] == data[i+k] {
		k++
	}
	return k
}

// Exhaustive compares every window position with the upcoming bytes.
type Exhaustive struct {
	WindowSize int
}

func (e *Exhaustive) Reset() {}

func (e *Exhaustive) FindMatch(data []byte, pos, limit int) (int, int) {
	bestLen, bestDist := 0, 0
	searchStart := max(0, pos-e.WindowSize)
	for j := searchStart; j < pos; j++ {
		k := matchLength(data, j, pos, limit)
		if k > bestLen {
			bestLen = k
			bestDist = pos - j
			if pos+k == limit {
				break
			}
		}
	}
	return bestDist, bestLen
}

const (
	hashBits  = 15
	hashSize  = 1 << hashBits
	hashMul32 = 0x1e35a7bd
)

func hash3(data []byte, p int) uint32 {
	u := uint32(data[p])<<16 | uint32(data[p+1])<<8 | uint32(data[p+2])
	return (u * hashMul32) >> (32 - hashBits)
}

// HashChain indexes every position by a hash of its next three bytes and only
// compares positions on the same chain. It returns the same result as
// Exhaustive for every match of three bytes or more; shorter matches are not
// reported. Call Reset before searching a new input.
type HashChain struct {
	WindowSize int

	head     [hashSize]int32
	prev     []int32
	inserted int
}

func (q *HashChain) Reset() {
	for i := range q.head {
		q.head[i] = -1
	}
	q.prev = q.prev[:0]
	q.inserted = 0
}

// insertUpTo threads every position before pos onto its chain.
func (q *HashChain) insertUpTo(data []byte, pos int) {
	for ; q.inserted < pos; q.inserted++ {
		p := q.inserted
		if p+3 > len(data) {
			q.prev = append(q.prev, -1)
			continue
		}
		h := hash3(data, p)
		q.prev = append(q.prev, q.head[h])
		q.head[h] = int32(p)
	}
}

func (q *HashChain) FindMatch(data []byte, pos, limit int) (int, int) {
	q.insertUpTo(data, pos)
	if limit-pos < 3 {
		return 0, 0
	}
	bestLen, bestDist := 0, 0
	// Chains run from the newest position to the oldest, so ">=" leaves the
	// furthest of equally long matches.
	for p := int(q.head[hash3(data, pos)]); p >= 0 && pos-p <= q.WindowSize; p = int(q.prev[p]) {
		k := matchLength(data, p, pos, limit)
		if k > 0 && k >= bestLen {
			bestLen = k
			bestDist = pos - p
		}
	}
	return bestDist, bestLen
}
