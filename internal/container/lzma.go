package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

const (
	// sizeFloor is the smallest declared body size taken at face value.
	sizeFloor = 64

	// payloadShift is where the second producer starts the compressed bytes,
	// relative to the header end.
	payloadShift = 8

	unknownSize = ^uint64(0)

	// Bounds for the dictionary size in the rebuilt header. Within them it
	// follows the declared body size.
	minDictSize = 1 << 16
	maxDictSize = 64 << 20
)

// canonicalProps replaces the file's properties when the declared size is
// implausible: lc=3 lp=0 pb=2 with a 16 MiB dictionary.
var canonicalProps = [5]byte{0x5d, 0x00, 0x00, 0x00, 0x01}

// lzmaStream is the classic 13-byte .lzma header rebuilt from the container.
type lzmaStream struct {
	props [5]byte
	size  uint64
}

func newLZMAStream(props [8]byte, declared uint32) lzmaStream {
	if declared < sizeFloor {
		return lzmaStream{props: canonicalProps, size: unknownSize}
	}
	var s lzmaStream
	copy(s.props[:], props[:5])
	dict := binary.LittleEndian.Uint32(props[1:5])
	dict = min(dict, max(declared, minDictSize), maxDictSize)
	binary.LittleEndian.PutUint32(s.props[1:5], dict)
	s.size = uint64(declared)
	return s
}

func (s lzmaStream) header() []byte {
	h := make([]byte, 13)
	copy(h, s.props[:])
	binary.LittleEndian.PutUint64(h[5:], s.size)
	return h
}

// decode inflates payload behind the rebuilt header. A stream of unknown
// size that ends without an end marker is accepted once it produced bytes:
// the reader reports io.ErrUnexpectedEOF first and then drains what it
// already decoded.
func (s lzmaStream) decode(payload []byte) ([]byte, error) {
	r, err := lzma.NewReader(io.MultiReader(bytes.NewReader(s.header()), bytes.NewReader(payload)))
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	buf := make([]byte, 32<<10)
	truncated := false
	for {
		n, err := r.Read(buf)
		out.Write(buf[:n])
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if !errors.Is(err, io.ErrUnexpectedEOF) || s.size != unknownSize {
			return nil, err
		}
		if truncated && n == 0 {
			break
		}
		truncated = true
	}
	if out.Len() == 0 {
		if truncated {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, errors.New("empty stream")
	}
	return out.Bytes(), nil
}

// decompress tries the payload at the header end, then payloadShift bytes
// later. It returns the body and the offset that worked.
func decompress(data []byte, h parsedHeader) ([]byte, int, error) {
	s := newLZMAStream(h.props, h.DataSize)
	attempts := []int{h.payloadOffset, h.payloadOffset + payloadShift}

	var errs []error
	for _, off := range attempts {
		if off >= len(data) {
			errs = append(errs, fmt.Errorf("offset %d: past end of file", off))
			continue
		}
		body, err := s.decode(data[off:])
		if err == nil {
			return body, off, nil
		}
		errs = append(errs, fmt.Errorf("offset %d: %w", off, err))
	}
	return nil, 0, fmt.Errorf("%w: %w", ErrDecompressionFailure, errors.Join(errs...))
}
