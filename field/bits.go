package field

import (
	"crypto/rand"
	"encoding/binary"
)

// Bit-level conversion between byte streams and field elements. The bit
// order is most significant first within each byte, matching the order
// the bytes would be read off a wire.

// SplitBits splits data into field elements of k bits each. Trailing
// bits that do not fill a whole element are discarded.
func SplitBits(data []byte, k int, f Field) []Element {
	n := len(data) * 8 / k
	out := make([]Element, n)
	for i := 0; i < n; i++ {
		var v uint64
		for bit := 0; bit < k; bit++ {
			src := i*k + bit
			if data[src/8]&(1<<(7-src%8)) != 0 {
				v |= 1 << (k - 1 - bit)
			}
		}
		out[i] = f.Element(v)
	}
	return out
}

// JoinBits packs elements back into bytes, k bits per element. The
// output is zero-padded up to a whole byte.
func JoinBits(elements []Element, k int) []byte {
	out := make([]byte, (len(elements)*k+7)/8)
	for i, e := range elements {
		v := e.Uint64()
		for bit := 0; bit < k; bit++ {
			if v&(1<<(k-1-bit)) != 0 {
				dst := i*k + bit
				out[dst/8] |= 1 << (7 - dst%8)
			}
		}
	}
	return out
}

// bitsToUint64 reads the first bitLen bits of data, most significant
// first, into the low bitLen bits of a uint64.
func bitsToUint64(data []byte, bitLen int) uint64 {
	var v uint64
	for i := 0; i < bitLen && i < 64; i++ {
		if i/8 < len(data) && data[i/8]&(1<<(7-i%8)) != 0 {
			v |= 1 << (bitLen - 1 - i)
		}
	}
	return v
}

// uint64ToBits writes the low bitLen bits of v, most significant first.
func uint64ToBits(v uint64, bitLen int) []byte {
	out := make([]byte, (bitLen+7)/8)
	for i := 0; i < bitLen && i < 64; i++ {
		if v&(1<<(bitLen-1-i)) != 0 {
			out[i/8] |= 1 << (7 - i%8)
		}
	}
	return out
}

func randomUint64() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}
