package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// FoldedID computes the xxHash64 of the given string with ASCII letters
// folded to lower case. Two names that differ only in ASCII letter case
// produce the same folded ID, which is what case-insensitive name matching
// keys on.
func FoldedID(data string) uint64 {
	buf := make([]byte, len(data))
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf[i] = c
	}

	return xxhash.Sum64(buf)
}
