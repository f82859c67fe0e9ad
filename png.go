package icongen

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

// pngSignature is the fixed 8-byte PNG file header.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// EncodePNG wraps raw 8-bit RGBA scanlines into a minimal valid PNG byte
// stream: signature, IHDR (bit depth 8, color type 6), a single
// zlib-compressed IDAT, and an empty IEND. The scanlines must carry one
// leading filter-type byte per row, as produced by Pixmap.Scanlines.
//
// The output deliberately contains nothing else: no palette, no
// interlacing, no ancillary chunks. Any standard PNG reader can decode it.
func EncodePNG(width, height int, scanlines []byte) ([]byte, error) {
	if want := height * (width*4 + 1); len(scanlines) != want {
		return nil, fmt.Errorf("icongen: scanline buffer is %d bytes, want %d for %dx%d", len(scanlines), want, width, height)
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // color type: truecolor with alpha
	// compression, filter, interlace all zero

	var idat bytes.Buffer
	zw, err := zlib.NewWriterLevel(&idat, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("icongen: %w", err)
	}
	if _, err := zw.Write(scanlines); err != nil {
		return nil, fmt.Errorf("icongen: compressing scanlines: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("icongen: compressing scanlines: %w", err)
	}

	out := make([]byte, 0, len(pngSignature)+len(ihdr)+idat.Len()+3*12)
	out = append(out, pngSignature...)
	out = appendChunk(out, "IHDR", ihdr[:])
	out = appendChunk(out, "IDAT", idat.Bytes())
	out = appendChunk(out, "IEND", nil)

	Logger().Debug("encoded PNG",
		"width", width, "height", height, "bytes", len(out))
	return out, nil
}

// appendChunk appends one PNG chunk: big-endian payload length, 4-byte
// type tag, payload, and a big-endian CRC32 computed over tag+payload.
func appendChunk(dst []byte, tag string, data []byte) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(len(data)))
	dst = append(dst, buf[:]...)
	dst = append(dst, tag...)
	dst = append(dst, data...)

	crc := crc32.NewIEEE()
	crc.Write([]byte(tag))
	crc.Write(data)
	binary.BigEndian.PutUint32(buf[:], crc.Sum32())
	return append(dst, buf[:]...)
}
