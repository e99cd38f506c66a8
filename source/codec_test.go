package source

import (
	"bytes"
	"testing"

	"github.com/inikit/inikit/errs"
	"github.com/inikit/inikit/format"
	"github.com/stretchr/testify/require"
)

var sampleINI = []byte(`[server]
host = localhost
port = 8080
; repeated filler makes the sample compressible
filler = aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa
filler2 = aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa
`)

func TestCodecRoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(sampleINI)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(sampleINI, restored))
		})
	}
}

func TestCodecCompresses(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(sampleINI)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(sampleINI))
		})
	}
}

func TestCreateCodec(t *testing.T) {
	t.Run("EveryBuiltinType", func(t *testing.T) {
		for _, ct := range []format.CompressionType{
			format.CompressionNone,
			format.CompressionZstd,
			format.CompressionS2,
			format.CompressionLZ4,
		} {
			codec, err := CreateCodec(ct)
			require.NoError(t, err)
			require.NotNil(t, codec)
		}
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := CreateCodec(format.CompressionType(0xAA))
		require.ErrorIs(t, err, errs.ErrUnsupportedCompression)

		_, err = GetCodec(format.CompressionType(0xAA))
		require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	})
}

func TestCorruptedInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03}

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestNoOpSharesBuffer(t *testing.T) {
	codec := NewNoOpCompressor()

	out, err := codec.Compress(sampleINI)
	require.NoError(t, err)
	require.Same(t, &sampleINI[0], &out[0])
}
