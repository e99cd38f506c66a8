package source

// ZstdCompressor compresses snapshots with Zstandard. It trades speed for
// the best compression ratio of the built-in codecs, which suits archived or
// rarely-read configuration snapshots.
//
// Two implementations exist behind build tags: cgo builds bind libzstd via
// valyala/gozstd, pure-Go builds use klauspost/compress/zstd with pooled
// encoders and decoders. Both produce standard zstd frames and are wire
// compatible with each other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
