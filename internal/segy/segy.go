// Package segy implements the minimal SEG-Y rev1 container I/O the line
// splitter needs: global headers, per-trace headers with coordinate
// extraction, and range-sliced output writing. Trace sample data is carried
// as opaque bytes and never interpreted; only its size matters.
package segy

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/banshee-data/survey.lines/internal/geom"
	"github.com/banshee-data/survey.lines/internal/units"
)

// Fixed SEG-Y structure sizes in bytes.
const (
	TextHeaderSize   = 3200
	BinaryHeaderSize = 400
	TraceHeaderSize  = 240
)

// Binary header field offsets (0-based within the 400-byte header,
// big-endian int16 each).
const (
	binSampleInterval    = 16 // bytes 3217-3218 of the file
	binSamplesPerTrace   = 20 // bytes 3221-3222
	binFormat            = 24 // bytes 3225-3226
	binMeasurementSystem = 54 // bytes 3255-3256
)

// Trace header field offsets (0-based within the 240-byte header).
const (
	trcCoordScalar = 70  // int16, scalar applied to all coordinate fields
	trcSourceX     = 72  // int32
	trcSourceY     = 76  // int32
	trcGroupX      = 80  // int32
	trcGroupY      = 84  // int32
	trcCDPX        = 180 // int32
	trcCDPY        = 184 // int32
)

var (
	// ErrTruncated is returned when the file ends inside a header or trace.
	ErrTruncated = errors.New("truncated SEG-Y file")

	// ErrUnknownFormat is returned for a data format code with an unknown
	// sample width.
	ErrUnknownFormat = errors.New("unknown SEG-Y data format code")
)

// BinaryHeader is the 400-byte binary file header, kept raw for
// byte-faithful rewriting, with the few fields the splitter needs parsed
// out.
type BinaryHeader struct {
	Raw [BinaryHeaderSize]byte

	SampleIntervalUS  int // sample interval in microseconds
	SamplesPerTrace   int
	Format            int // data sample format code
	MeasurementSystem int // 1 = metres, 2 = feet
}

func parseBinaryHeader(raw [BinaryHeaderSize]byte) BinaryHeader {
	i16 := func(off int) int {
		return int(int16(binary.BigEndian.Uint16(raw[off : off+2])))
	}
	return BinaryHeader{
		Raw:               raw,
		SampleIntervalUS:  i16(binSampleInterval),
		SamplesPerTrace:   i16(binSamplesPerTrace),
		Format:            i16(binFormat),
		MeasurementSystem: i16(binMeasurementSystem),
	}
}

// BytesPerSample returns the sample width for a SEG-Y data format code.
func BytesPerSample(format int) (int, error) {
	switch format {
	case 1, 2, 4, 5, 10: // IBM float, int32, obsolete gain, IEEE float, uint32
		return 4, nil
	case 3, 11: // int16, uint16
		return 2, nil
	case 6, 9, 12: // float64, int64, uint64
		return 8, nil
	case 7, 15: // int24, uint24
		return 3, nil
	case 8, 16: // int8, uint8
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
}

// Trace is one trace record: its raw 240-byte header and opaque sample data.
type Trace struct {
	Header [TraceHeaderSize]byte
	Data   []byte
}

func (t *Trace) i16(off int) int {
	return int(int16(binary.BigEndian.Uint16(t.Header[off : off+2])))
}

func (t *Trace) i32(off int) int {
	return int(int32(binary.BigEndian.Uint32(t.Header[off : off+4])))
}

// CoordScalar returns the coordinate scalar from the trace header.
func (t *Trace) CoordScalar() int { return t.i16(trcCoordScalar) }

// scaled applies the coordinate scalar: negative divides by its absolute
// value, positive multiplies, zero leaves the value unscaled.
func scaled(raw, scalar int) float64 {
	switch {
	case scalar < 0:
		return float64(raw) / float64(-scalar)
	case scalar > 0:
		return float64(raw) * float64(scalar)
	default:
		return float64(raw)
	}
}

// File is a fully loaded SEG-Y file.
type File struct {
	TextHeader [TextHeaderSize]byte
	Binary     BinaryHeader
	Traces     []Trace
}

// Open reads the SEG-Y file at path into memory.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	sf, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sf, nil
}

// Read parses a complete SEG-Y stream: textual header, binary header, then
// traces until EOF. The trace data length is fixed by the binary header's
// samples-per-trace and format code.
func Read(r io.Reader) (*File, error) {
	var f File
	if _, err := io.ReadFull(r, f.TextHeader[:]); err != nil {
		return nil, fmt.Errorf("%w: reading textual header: %v", ErrTruncated, err)
	}
	var rawBin [BinaryHeaderSize]byte
	if _, err := io.ReadFull(r, rawBin[:]); err != nil {
		return nil, fmt.Errorf("%w: reading binary header: %v", ErrTruncated, err)
	}
	f.Binary = parseBinaryHeader(rawBin)

	width, err := BytesPerSample(f.Binary.Format)
	if err != nil {
		return nil, err
	}
	if f.Binary.SamplesPerTrace < 0 {
		return nil, fmt.Errorf("negative samples per trace: %d", f.Binary.SamplesPerTrace)
	}
	dataLen := width * f.Binary.SamplesPerTrace

	for {
		var t Trace
		_, err := io.ReadFull(r, t.Header[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading trace %d header: %v", ErrTruncated, len(f.Traces), err)
		}
		t.Data = make([]byte, dataLen)
		if _, err := io.ReadFull(r, t.Data); err != nil {
			return nil, fmt.Errorf("%w: reading trace %d data: %v", ErrTruncated, len(f.Traces), err)
		}
		f.Traces = append(f.Traces, t)
	}
	return &f, nil
}

// Coordinates extracts one scalar-corrected 2D position per trace from the
// requested header pair ("source", "group" or "cdp"), converted to metres
// when the binary header declares feet.
func (f *File) Coordinates(source string) ([]geom.Point, error) {
	var offX, offY int
	switch source {
	case units.CoordSourceSource:
		offX, offY = trcSourceX, trcSourceY
	case units.CoordSourceGroup:
		offX, offY = trcGroupX, trcGroupY
	case units.CoordSourceCDP:
		offX, offY = trcCDPX, trcCDPY
	default:
		return nil, fmt.Errorf("coord source must be one of %s, got %q",
			units.GetValidCoordSourcesString(), source)
	}

	points := make([]geom.Point, len(f.Traces))
	for i := range f.Traces {
		t := &f.Traces[i]
		s := t.CoordScalar()
		x := scaled(t.i32(offX), s)
		y := scaled(t.i32(offY), s)
		points[i] = geom.Point{
			X: units.ConvertToMetres(x, f.Binary.MeasurementSystem),
			Y: units.ConvertToMetres(y, f.Binary.MeasurementSystem),
		}
	}
	return points, nil
}

// WriteRange writes a SEG-Y stream containing the traces [first, last]
// (inclusive) under the file's unmodified textual and binary headers.
func (f *File) WriteRange(w io.Writer, first, last int) error {
	if first < 0 || last >= len(f.Traces) || first > last {
		return fmt.Errorf("trace range [%d, %d] outside [0, %d]", first, last, len(f.Traces)-1)
	}
	if _, err := w.Write(f.TextHeader[:]); err != nil {
		return fmt.Errorf("writing textual header: %w", err)
	}
	if _, err := w.Write(f.Binary.Raw[:]); err != nil {
		return fmt.Errorf("writing binary header: %w", err)
	}
	for i := first; i <= last; i++ {
		if _, err := w.Write(f.Traces[i].Header[:]); err != nil {
			return fmt.Errorf("writing trace %d header: %w", i, err)
		}
		if _, err := w.Write(f.Traces[i].Data); err != nil {
			return fmt.Errorf("writing trace %d data: %w", i, err)
		}
	}
	return nil
}

// WriteRangeFile writes the trace range to a new file at path.
func (f *File) WriteRangeFile(path string, first, last int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := f.WriteRange(out, first, last); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
