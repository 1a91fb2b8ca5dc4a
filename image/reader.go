package image

import (
	"fmt"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/spf13/afero"
)

// Reader gives access to the header and payloads of an existing image
type Reader struct {
	imageFile afero.File
	header    Header
	size      int64
}

// NewReader opens an image and decodes its header
func NewReader(fs afero.Fs, imagePath string) (*Reader, error) {
	imageFile, err := fs.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("cannot open image file: %v", err)
	}
	info, err := imageFile.Stat()
	if err != nil {
		imageFile.Close()
		return nil, fmt.Errorf("cannot read image file: %v", err)
	}
	b := make([]byte, HeaderSize)
	if _, err = io.ReadFull(imageFile, b); err != nil {
		imageFile.Close()
		return nil, fmt.Errorf("cannot read image header: %v", err)
	}
	reader := &Reader{
		imageFile: imageFile,
		size:      info.Size(),
	}
	if err = reader.header.UnmarshalBinary(b); err != nil {
		imageFile.Close()
		return nil, err
	}
	return reader, nil
}

// Header returns the decoded image header
func (r *Reader) Header() Header {
	return r.header
}

// Size is the length of the image file
func (r *Reader) Size() int64 {
	return r.size
}

// Payload returns a reader over the bytes of a payload
func (r *Reader) Payload(p Payload) (io.Reader, error) {
	off := r.header.FileOffset(p)
	n := r.header.PayloadSize(p)
	if n > MaxImageSize || off+n > uint64(r.size) {
		return nil, fmt.Errorf("%s payload (%d bytes at %d) extends past end of image (%d bytes)", p, n, off, r.size)
	}
	return io.NewSectionReader(r.imageFile, int64(off), int64(n)), nil
}

// CopyPayload copies a payload out of the image into dest on fs
func (r *Reader) CopyPayload(p Payload, fs afero.Fs, dest string) (int64, error) {
	src, err := r.Payload(p)
	if err != nil {
		return 0, err
	}
	destFile, err := fs.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("cannot create destination file: %v", err)
	}
	n, err := io.Copy(destFile, src)
	if cerr := destFile.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// Verification is the result of a successful Verify
type Verification struct {
	Header  Header        `json:"header"`
	Size    int64         `json:"size"`
	Padding uint64        `json:"padding"`
	Digest  digest.Digest `json:"digest"`
}

// Verify checks the header against the file length and the pad run, and
// digests the whole image
func (r *Reader) Verify() (*Verification, error) {
	h := r.header
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if uint64(r.size) != h.ImageSize() {
		return nil, fmt.Errorf("image is %d bytes, header describes %d sectors (%d bytes)", r.size, h.SectorCount, h.ImageSize())
	}

	digester := digest.Canonical.Digester()
	sr := io.NewSectionReader(r.imageFile, 0, r.size)
	raw := h.RawSize()
	if _, err := io.CopyN(digester.Hash(), sr, int64(raw)); err != nil {
		return nil, fmt.Errorf("cannot read image: %v", err)
	}
	pad := make([]byte, h.PadSize())
	if _, err := io.ReadFull(sr, pad); err != nil {
		return nil, fmt.Errorf("cannot read padding: %v", err)
	}
	digester.Hash().Write(pad)
	for i, b := range pad {
		if b != PadByte {
			return nil, fmt.Errorf("invalid pad byte 0x%02x at offset %d", b, raw+uint64(i))
		}
	}

	return &Verification{
		Header:  h,
		Size:    r.size,
		Padding: uint64(len(pad)),
		Digest:  digester.Digest(),
	}, nil
}

// Close closes the image file
func (r *Reader) Close() error {
	return r.imageFile.Close()
}
