package chart

import (
	"bytes"
	"fmt"
	"sync"

	"goplots/internal"
	"goplots/internal/errors"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Encoder turns figures into PNG bytes. It is safe for concurrent use.
type Encoder struct {
	logger *internal.Logger
	pool   sync.Pool
}

// NewEncoder creates an encoder logging through logger.
func NewEncoder(logger *internal.Logger) *Encoder {
	return &Encoder{
		logger: logger.WithComponent("Encoder"),
		pool: sync.Pool{
			New: func() interface{} { return new(bytes.Buffer) },
		},
	}
}

var defaultEncoder = NewEncoder(internal.DefaultLogger)

// EncodePNG encodes fig with the shared default encoder.
func EncodePNG(fig Figure) ([]byte, error) {
	return defaultEncoder.Encode(fig)
}

// Build constructs a figure with build and encodes it. A panic while
// building is reported like a panic while rendering.
func (e *Encoder) Build(kind string, build func() Figure) (out []byte, err error) {
	fig, err := e.construct(kind, build)
	if err != nil {
		return nil, err
	}
	return e.Encode(fig)
}

func (e *Encoder) construct(kind string, build func() Figure) (fig Figure, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("building %s panicked: %v", kind, r)
			fig, err = nil, errors.InternalError(fmt.Sprintf("building %s panicked: %v", kind, r))
		}
	}()
	return build(), nil
}

// Encode lays out and renders fig into a fresh byte slice. The figure is
// closed on every path, including a panicking backend.
func (e *Encoder) Encode(fig Figure) (out []byte, err error) {
	buf := e.pool.Get().(*bytes.Buffer)
	buf.Reset()
	defer e.pool.Put(buf)
	defer func() {
		if cerr := fig.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to release figure")
		}
	}()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("render of %s panicked: %v", fig.Meta().Kind, r)
			out, err = nil, errors.InternalError(fmt.Sprintf("render panicked: %v", r))
		}
	}()

	meta := fig.Meta()
	fig.Layout()
	if err := fig.Render(buf); err != nil {
		e.logger.Warn("render of %s failed: %v", meta.Kind, err)
		return nil, errors.Wrapf(err, "failed to render %s", meta.Kind)
	}
	if !bytes.HasPrefix(buf.Bytes(), pngSignature) {
		return nil, errors.InternalError("renderer produced non-PNG output")
	}

	out = make([]byte, buf.Len())
	copy(out, buf.Bytes())
	e.logger.Debug("encoded %s %dx%d: %d bytes", meta.Kind, meta.Width, meta.Height, len(out))
	return out, nil
}
