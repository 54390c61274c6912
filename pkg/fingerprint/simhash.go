package fingerprint

import (
	"encoding/binary"
	"encoding/hex"
	"hash/fnv"
)

// simhash128 computes a 128-bit simhash over character 3-shingles of the
// input text. Each shingle contributes two 64-bit FNV-1a hashes (low and high
// halves); bit positions vote +1/-1 and the final bit is set where the vote
// is positive. Returns lowercase hex (32 chars). Empty text hashes to all
// zeros, which is a valid stable value.
func simhash128(text string) string {
	var votes [128]int

	shingles := charShingles(text, 3)
	for _, sh := range shingles {
		lo := fnv64a(sh)
		hi := fnv64a(sh + "\x00hi")
		for bit := 0; bit < 64; bit++ {
			if lo&(1<<uint(bit)) != 0 {
				votes[bit]++
			} else {
				votes[bit]--
			}
			if hi&(1<<uint(bit)) != 0 {
				votes[64+bit]++
			} else {
				votes[64+bit]--
			}
		}
	}

	var out [16]byte
	var lo, hi uint64
	for bit := 0; bit < 64; bit++ {
		if votes[bit] > 0 {
			lo |= 1 << uint(bit)
		}
		if votes[64+bit] > 0 {
			hi |= 1 << uint(bit)
		}
	}
	binary.BigEndian.PutUint64(out[:8], hi)
	binary.BigEndian.PutUint64(out[8:], lo)
	return hex.EncodeToString(out[:])
}

// charShingles splits text into overlapping character n-grams. Texts shorter
// than n yield a single shingle (the whole text) when non-empty.
func charShingles(text string, n int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if len(runes) <= n {
		return []string{string(runes)}
	}
	shingles := make([]string, 0, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		shingles = append(shingles, string(runes[i:i+n]))
	}
	return shingles
}

func fnv64a(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
