package image

import (
	"bytes"
	_ "crypto/sha256" // digest.Canonical
	"io"

	"github.com/nanovms/unistrap/log"
	"github.com/opencontainers/go-digest"
)

//go:generate mockgen -destination=mocks/mock_image.go -package=mocks github.com/nanovms/unistrap/image Source,Sink

// Source is a payload that can be measured and then read from its start
type Source interface {
	io.Reader
	io.Seeker
}

// Sink receives image bytes strictly in layout order
type Sink interface {
	io.Writer
}

// Report summarizes a composed image
type Report struct {
	Header Header `json:"header"`

	// Written counts header and payload bytes, without padding
	Written uint64        `json:"written"`
	Padding uint64        `json:"padding"`
	Digest  digest.Digest `json:"digest"`
}

// Composer lays out a bootstrap and a kernel payload into an image
type Composer struct {
	// Progress receives a copy of every byte written to the sink
	Progress io.Writer
}

// Compose writes an image to sink using a zero Composer
func Compose(bootstrap, kernel Source, sink Sink) (*Report, error) {
	return (&Composer{}).Compose(bootstrap, kernel, sink)
}

// Compose measures both payloads, writes the header followed by the
// payloads and pads the image up to a whole sector.
func (c *Composer) Compose(bootstrap, kernel Source, sink Sink) (*Report, error) {
	bsSize, err := measure(bootstrap)
	if err != nil {
		return nil, sourceError(Bootstrap, "", err)
	}
	kSize, err := measure(kernel)
	if err != nil {
		return nil, sourceError(Kernel, "", err)
	}

	hdr, err := NewHeader(bsSize, kSize)
	if err != nil {
		return nil, &Error{Kind: TooLarge, Err: err}
	}
	log.Debugf("layout: %d sectors, bootstrap %d@%d, kernel %d@%d",
		hdr.SectorCount, hdr.BootstrapSize, hdr.BootstrapOffset, hdr.KernelSize, hdr.KernelOffset)

	w := &imageWriter{
		sink:     sink,
		progress: c.Progress,
		digester: digest.Canonical.Digester(),
	}

	encoded, err := hdr.MarshalBinary()
	if err != nil {
		return nil, writeError(StageHeader, err)
	}
	if _, err = w.Write(encoded); err != nil {
		return nil, writeError(StageHeader, err)
	}
	if err = w.copyPayload(bootstrap, Bootstrap, bsSize); err != nil {
		return nil, err
	}
	if err = w.copyPayload(kernel, Kernel, kSize); err != nil {
		return nil, err
	}

	pad := hdr.PadSize()
	if pad > 0 {
		if _, err = w.Write(bytes.Repeat([]byte{PadByte}, int(pad))); err != nil {
			return nil, writeError(StagePadding, err)
		}
	}
	log.Debugf("wrote %d bytes, %d bytes of padding", hdr.RawSize(), pad)

	return &Report{
		Header:  hdr,
		Written: hdr.RawSize(),
		Padding: pad,
		Digest:  w.digester.Digest(),
	}, nil
}

func measure(s Source) (uint64, error) {
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err = s.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return uint64(end), nil
}

// imageWriter forwards to the sink and remembers sink failures so copy
// errors can be told apart from source errors.
type imageWriter struct {
	sink     io.Writer
	progress io.Writer
	digester digest.Digester
	err      error
}

func (w *imageWriter) Write(p []byte) (int, error) {
	n, err := w.sink.Write(p)
	if n < 0 || n > len(p) {
		n = 0
	}
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	w.digester.Hash().Write(p[:n])
	if w.progress != nil {
		w.progress.Write(p[:n])
	}
	if err != nil {
		w.err = err
	}
	return n, err
}

// copyPayload copies exactly the measured number of bytes
func (w *imageWriter) copyPayload(src Source, p Payload, size uint64) error {
	w.err = nil
	_, err := io.CopyN(w, src, int64(size))
	if err == nil {
		return nil
	}
	if w.err != nil {
		return writeError(copyStage(p), w.err)
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return sourceError(p, "", err)
}
