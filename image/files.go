package image

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/nanovms/unistrap/log"
	"github.com/spf13/afero"
)

// Files names the inputs and the output of an image build
type Files struct {
	Bootstrap string
	Kernel    string
	Output    string
	// Atomic writes through a temporary file that is renamed over Output
	// once the image is complete
	Atomic bool
}

// ComposeFiles opens both payloads and the output on fs and composes the
// image. Every file opened here is closed before returning.
func (c *Composer) ComposeFiles(fs afero.Fs, files Files) (*Report, error) {
	bs, err := openSource(fs, files.Bootstrap)
	if err != nil {
		return nil, sourceError(Bootstrap, files.Bootstrap, err)
	}
	defer bs.Close()

	k, err := openSource(fs, files.Kernel)
	if err != nil {
		return nil, sourceError(Kernel, files.Kernel, err)
	}
	defer k.Close()

	out, err := createOutput(fs, files.Output, files.Atomic)
	if err != nil {
		return nil, sinkError(files.Output, err)
	}

	report, err := c.Compose(bs, k, out.file)
	if err != nil {
		out.discard()
		var e *Error
		if errors.As(err, &e) && e.Path == "" {
			switch e.Kind {
			case SourceUnavailable:
				e.Path = files.path(e.Payload)
			case WriteFailure:
				e.Path = files.Output
			}
		}
		return nil, err
	}

	if err = out.commit(); err != nil {
		out.discard()
		return nil, sinkError(files.Output, err)
	}
	return report, nil
}

// ComposeFiles composes files on fs using a zero Composer
func ComposeFiles(fs afero.Fs, files Files) (*Report, error) {
	return (&Composer{}).ComposeFiles(fs, files)
}

func (f Files) path(p Payload) string {
	if p == Kernel {
		return f.Kernel
	}
	return f.Bootstrap
}

func openSource(fs afero.Fs, path string) (afero.File, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return file, nil
}

type output struct {
	fs   afero.Fs
	file afero.File
	path string
	temp string
}

func createOutput(fs afero.Fs, path string, atomic bool) (*output, error) {
	if !atomic {
		file, err := fs.Create(path)
		if err != nil {
			return nil, err
		}
		return &output{fs: fs, file: file, path: path}, nil
	}
	file, err := afero.TempFile(fs, filepath.Dir(path), "."+filepath.Base(path)+".")
	if err != nil {
		return nil, err
	}
	log.Debugf("writing %s through %s", path, file.Name())
	return &output{fs: fs, file: file, path: path, temp: file.Name()}, nil
}

func (o *output) commit() error {
	if err := o.file.Sync(); err != nil {
		return err
	}
	if err := o.file.Close(); err != nil {
		return err
	}
	if o.temp == "" {
		return nil
	}
	if err := o.fs.Chmod(o.temp, 0644); err != nil {
		return err
	}
	return o.fs.Rename(o.temp, o.path)
}

// discard releases the output; a temporary file is removed so no partial
// image shows up at the output path
func (o *output) discard() {
	o.file.Close()
	if o.temp != "" {
		if err := o.fs.Remove(o.temp); err != nil && !os.IsNotExist(err) {
			log.Warn("cannot remove", o.temp, err)
		}
	}
}
