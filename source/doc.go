// Package source loads INI text from files, readers and raw buffers, and
// transparently decompresses snapshot files on the way in.
//
// Configuration snapshots shipped between machines are often stored
// compressed; the loader picks the codec from the file extension (.zst,
// .zstd, .s2, .lz4) and hands the parser a plain-text buffer it owns. The
// codecs are symmetric, so the same package can write snapshots back out.
package source
