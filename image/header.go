package image

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-errors/errors"
)

// SectorSize is the alignment unit of an image
const SectorSize = 512

// HeaderSize is the encoded size of Header
const HeaderSize = 36

// PadByte fills the tail of the last sector
const PadByte byte = 0xEE

// bootstrapOffset skips the reserved lead-in sector
const bootstrapOffset = SectorSize

// MaxImageSize is the largest image the 16-bit sector count can describe
const MaxImageSize = math.MaxUint16 * SectorSize

// ErrTooManySectors is returned when an image needs more sectors than the
// header can count
var ErrTooManySectors = errors.Errorf("image exceeds %d sectors", math.MaxUint16)

// Header describes where the payloads of an image live.
//
// Offsets are expressed relative to the start of the disk with the reserved
// lead-in sector in front of the payloads, so BootstrapOffset is always one
// sector. In the file itself the payloads follow the header directly; see
// FileOffset.
type Header struct {
	HeaderSize      uint16 `json:"header_size"`
	SectorCount     uint16 `json:"sector_count"`
	BootstrapOffset uint64 `json:"bootstrap_offset"`
	BootstrapSize   uint64 `json:"bootstrap_size"`
	KernelOffset    uint64 `json:"kernel_offset"`
	KernelSize      uint64 `json:"kernel_size"`
}

// NewHeader computes the header for payloads of the given sizes
func NewHeader(bootstrapSize, kernelSize uint64) (Header, error) {
	if bootstrapSize > MaxImageSize || kernelSize > MaxImageSize {
		return Header{}, ErrTooManySectors
	}
	sectors := alignUp(HeaderSize+bootstrapSize+kernelSize, SectorSize) / SectorSize
	if sectors > math.MaxUint16 {
		return Header{}, ErrTooManySectors
	}
	return Header{
		HeaderSize:      HeaderSize,
		SectorCount:     uint16(sectors),
		BootstrapOffset: bootstrapOffset,
		BootstrapSize:   bootstrapSize,
		KernelOffset:    bootstrapOffset + bootstrapSize,
		KernelSize:      kernelSize,
	}, nil
}

// RawSize is the number of bytes written before padding
func (h Header) RawSize() uint64 {
	return uint64(h.HeaderSize) + h.BootstrapSize + h.KernelSize
}

// ImageSize is the total length of the image in bytes
func (h Header) ImageSize() uint64 {
	return uint64(h.SectorCount) * SectorSize
}

// PadSize is the number of fill bytes after the kernel payload
func (h Header) PadSize() uint64 {
	return h.ImageSize() - h.RawSize()
}

// FileOffset returns the byte position of a payload inside the image file
func (h Header) FileOffset(p Payload) uint64 {
	if p == Kernel {
		return uint64(h.HeaderSize) + h.BootstrapSize
	}
	return uint64(h.HeaderSize)
}

// PayloadSize returns the length of a payload
func (h Header) PayloadSize(p Payload) uint64 {
	if p == Kernel {
		return h.KernelSize
	}
	return h.BootstrapSize
}

// MarshalBinary encodes the header in its little-endian on-disk form
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint16(b[0:], h.HeaderSize)
	binary.LittleEndian.PutUint16(b[2:], h.SectorCount)
	binary.LittleEndian.PutUint64(b[4:], h.BootstrapOffset)
	binary.LittleEndian.PutUint64(b[12:], h.BootstrapSize)
	binary.LittleEndian.PutUint64(b[20:], h.KernelOffset)
	binary.LittleEndian.PutUint64(b[28:], h.KernelSize)
	return b, nil
}

// UnmarshalBinary decodes a header previously encoded by MarshalBinary
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < HeaderSize {
		return errors.Errorf("short header: got %d bytes want %d", len(b), HeaderSize)
	}
	h.HeaderSize = binary.LittleEndian.Uint16(b[0:])
	h.SectorCount = binary.LittleEndian.Uint16(b[2:])
	h.BootstrapOffset = binary.LittleEndian.Uint64(b[4:])
	h.BootstrapSize = binary.LittleEndian.Uint64(b[12:])
	h.KernelOffset = binary.LittleEndian.Uint64(b[20:])
	h.KernelSize = binary.LittleEndian.Uint64(b[28:])
	return nil
}

// Validate checks the header fields against each other
func (h Header) Validate() error {
	if h.HeaderSize != HeaderSize {
		return fmt.Errorf("invalid header size: got %d want %d", h.HeaderSize, HeaderSize)
	}
	if h.BootstrapSize > MaxImageSize || h.KernelSize > MaxImageSize {
		return fmt.Errorf("payload sizes out of range: bootstrap %d kernel %d", h.BootstrapSize, h.KernelSize)
	}
	if h.BootstrapOffset != bootstrapOffset {
		return fmt.Errorf("invalid bootstrap offset: got %d want %d", h.BootstrapOffset, bootstrapOffset)
	}
	if h.KernelOffset != h.BootstrapOffset+h.BootstrapSize {
		return fmt.Errorf("invalid kernel offset: got %d want %d", h.KernelOffset, h.BootstrapOffset+h.BootstrapSize)
	}
	want := alignUp(h.RawSize(), SectorSize) / SectorSize
	if uint64(h.SectorCount) != want {
		return fmt.Errorf("invalid sector count: got %d want %d", h.SectorCount, want)
	}
	return nil
}

func alignUp(value, align uint64) uint64 {
	return (value + align - 1) / align * align
}
