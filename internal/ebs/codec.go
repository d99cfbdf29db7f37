// Package ebs implements the binary codec for EbSynth (.ebs) project
// files. The format is a fixed-order little-endian record with two string
// encodings: version tokens stored as raw ASCII plus a NUL terminator, and
// path strings stored with an int32 length prefix. The codec performs no
// semantic validation; version tags and the trailing magic number pass
// through unverified in both directions.
package ebs

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ebstools/ebsedit/internal/models"
)

var (
	// ErrUnexpectedEOF is returned when the buffer ends before a field
	// is complete
	ErrUnexpectedEOF = errors.New("unexpected end of data")

	// ErrInvalidEncoding is returned for non-ASCII string bytes or a
	// negative length where a count is expected
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// decoder reads fields sequentially from an in-memory buffer, tracking the
// byte offset for error reporting.
type decoder struct {
	buf []byte
	off int
}

// take consumes exactly n bytes for the named field
func (d *decoder) take(field string, n int) ([]byte, error) {
	if n > len(d.buf)-d.off {
		return nil, fmt.Errorf("%s at offset %d: %w", field, d.off, ErrUnexpectedEOF)
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *decoder) readBool(field string) (bool, error) {
	b, err := d.take(field, 1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (d *decoder) readInt32(field string) (int32, error) {
	b, err := d.take(field, 4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (d *decoder) readFloat32(field string) (float32, error) {
	b, err := d.take(field, 4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

// readTokenString reads a fixed-length token whose size is taken from the
// reference string, plus a single terminator byte. The decoded text is not
// compared against the reference; callers that need strict version checking
// must compare the result themselves.
func (d *decoder) readTokenString(field, reference string) (string, error) {
	off := d.off
	b, err := d.take(field, len(reference)+1)
	if err != nil {
		return "", err
	}
	return asciiString(field, off, b[:len(reference)])
}

// readVarString reads an int32 length prefix followed by that many ASCII
// bytes. A negative length fails fast instead of attempting a negative read.
func (d *decoder) readVarString(field string) (string, error) {
	length, err := d.readInt32(field)
	if err != nil {
		return "", err
	}
	if length < 0 {
		return "", fmt.Errorf("%s at offset %d: negative length %d: %w",
			field, d.off-4, length, ErrInvalidEncoding)
	}
	off := d.off
	b, err := d.take(field, int(length))
	if err != nil {
		return "", err
	}
	return asciiString(field, off, b)
}

// asciiString converts bytes to a string, rejecting anything outside the
// 7-bit ASCII range
func asciiString(field string, off int, b []byte) (string, error) {
	for i, c := range b {
		if c > 0x7f {
			return "", fmt.Errorf("%s at offset %d: byte 0x%02x is not ASCII: %w",
				field, off+i, c, ErrInvalidEncoding)
		}
	}
	return string(b), nil
}

func (d *decoder) readInterval(field string) (models.Interval, error) {
	var iv models.Interval
	var err error
	if iv.KeyFrame, err = d.readInt32(field + " key_frame"); err != nil {
		return iv, err
	}
	if iv.FirstFrameIsUsed, err = d.readBool(field + " first_frame_is_used"); err != nil {
		return iv, err
	}
	if iv.FinalFrameIsUsed, err = d.readBool(field + " final_frame_is_used"); err != nil {
		return iv, err
	}
	if iv.FirstFrame, err = d.readInt32(field + " first_frame"); err != nil {
		return iv, err
	}
	if iv.FinalFrame, err = d.readInt32(field + " final_frame"); err != nil {
		return iv, err
	}
	if iv.OutputPath, err = d.readVarString(field + " output_path"); err != nil {
		return iv, err
	}
	return iv, nil
}

// Decode reads a complete project from data. It returns ErrUnexpectedEOF
// if the buffer is shorter than the format requires and ErrInvalidEncoding
// for non-ASCII string bytes or a negative interval count; both are wrapped
// with the field name and byte offset at which decoding stopped.
func Decode(data []byte) (models.Project, error) {
	d := &decoder{buf: data}
	var p models.Project
	var err error

	if p.ProgramVersion, err = d.readTokenString("program_version", models.ProgramVersion); err != nil {
		return models.Project{}, err
	}
	if p.VideoPath, err = d.readVarString("video_images_path"); err != nil {
		return models.Project{}, err
	}
	if p.MaskPath, err = d.readVarString("mask_images_path"); err != nil {
		return models.Project{}, err
	}
	if p.KeysPath, err = d.readVarString("key_images_path"); err != nil {
		return models.Project{}, err
	}
	if p.UseMask, err = d.readBool("mask_images_enabled"); err != nil {
		return models.Project{}, err
	}
	if p.KeysWeight, err = d.readFloat32("key_images_weight"); err != nil {
		return models.Project{}, err
	}
	if p.VideoWeight, err = d.readFloat32("video_images_weight"); err != nil {
		return models.Project{}, err
	}
	if p.MaskWeight, err = d.readFloat32("mask_images_weight"); err != nil {
		return models.Project{}, err
	}
	if p.Mapping, err = d.readFloat32("mapping"); err != nil {
		return models.Project{}, err
	}
	if p.DeFlicker, err = d.readFloat32("de_flicker"); err != nil {
		return models.Project{}, err
	}
	if p.Diversity, err = d.readFloat32("diversity"); err != nil {
		return models.Project{}, err
	}

	count, err := d.readInt32("interval_count")
	if err != nil {
		return models.Project{}, err
	}
	if count < 0 {
		return models.Project{}, fmt.Errorf("interval_count at offset %d: negative count %d: %w",
			d.off-4, count, ErrInvalidEncoding)
	}
	// The count is untrusted; cap the allocation hint by what the
	// remaining bytes could possibly hold (an interval is at least 18
	// bytes) so an oversized count fails in readInterval instead of
	// exhausting memory here.
	capHint := int(count)
	if limit := (len(d.buf) - d.off) / 18; capHint > limit {
		capHint = limit
	}
	p.Intervals = make([]models.Interval, 0, capHint)
	for i := int32(0); i < count; i++ {
		iv, err := d.readInterval(fmt.Sprintf("interval %d", i))
		if err != nil {
			return models.Project{}, err
		}
		p.Intervals = append(p.Intervals, iv)
	}

	if p.ProjectVersion, err = d.readTokenString("project_version", models.ProjectVersion); err != nil {
		return models.Project{}, err
	}
	if p.SynthesisDetail, err = d.readInt32("synthesis_detail"); err != nil {
		return models.Project{}, err
	}
	if p.UseGPU, err = d.readBool("use_gpu"); err != nil {
		return models.Project{}, err
	}
	if p.FramesPerSecond, err = d.readFloat32("frames_per_second"); err != nil {
		return models.Project{}, err
	}
	if p.MagicNumber, err = d.readInt32("magic_number"); err != nil {
		return models.Project{}, err
	}

	return p, nil
}

// encoder appends fields to a growing buffer
type encoder struct {
	buf []byte
}

func (e *encoder) writeBool(v bool) {
	if v {
		e.buf = append(e.buf, 0x01)
	} else {
		e.buf = append(e.buf, 0x00)
	}
}

func (e *encoder) writeInt32(v int32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(v))
}

func (e *encoder) writeFloat32(v float32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, math.Float32bits(v))
}

// writeTokenString writes the raw bytes followed by a NUL terminator
func (e *encoder) writeTokenString(s string) {
	e.buf = append(e.buf, s...)
	e.buf = append(e.buf, 0x00)
}

// writeVarString writes an int32 length prefix followed by the raw bytes
func (e *encoder) writeVarString(s string) {
	e.writeInt32(int32(len(s)))
	e.buf = append(e.buf, s...)
}

func (e *encoder) writeInterval(iv models.Interval) {
	e.writeInt32(iv.KeyFrame)
	e.writeBool(iv.FirstFrameIsUsed)
	e.writeBool(iv.FinalFrameIsUsed)
	e.writeInt32(iv.FirstFrame)
	e.writeInt32(iv.FinalFrame)
	e.writeVarString(iv.OutputPath)
}

// Encode writes the project to a byte sequence in the on-disk field order.
// Every value produced by Encode round-trips through Decode byte for byte.
func Encode(p models.Project) []byte {
	e := &encoder{}

	e.writeTokenString(p.ProgramVersion)
	e.writeVarString(p.VideoPath)
	e.writeVarString(p.MaskPath)
	e.writeVarString(p.KeysPath)
	e.writeBool(p.UseMask)
	e.writeFloat32(p.KeysWeight)
	e.writeFloat32(p.VideoWeight)
	e.writeFloat32(p.MaskWeight)
	e.writeFloat32(p.Mapping)
	e.writeFloat32(p.DeFlicker)
	e.writeFloat32(p.Diversity)

	e.writeInt32(int32(len(p.Intervals)))
	for _, iv := range p.Intervals {
		e.writeInterval(iv)
	}

	e.writeTokenString(p.ProjectVersion)
	e.writeInt32(p.SynthesisDetail)
	e.writeBool(p.UseGPU)
	e.writeFloat32(p.FramesPerSecond)
	e.writeInt32(p.MagicNumber)

	return e.buf
}

// ReadFile decodes the project file at path
func ReadFile(path string) (models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}
	p, err := Decode(data)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return p, nil
}

// WriteFile encodes the project and writes it to path
func WriteFile(path string, p models.Project) error {
	if err := os.WriteFile(path, Encode(p), 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}
