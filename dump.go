package msgpckdump

import (
	"fmt"
	"io"
	"strconv"
)

// Dumper walks a complete MessagePack buffer and renders one text
// line per decoded value, parents strictly before children.
type Dumper struct {
	dec *Decoder
	out *lineWriter
}

// NewDumper creates a Dumper that renders data to w.
func NewDumper(w io.Writer, data []byte, cfg Config) *Dumper {
	return &Dumper{
		dec: NewDecoderWithConfig(data, cfg),
		out: newLineWriter(w, cfg, len(data)),
	}
}

// Dump renders every MessagePack value in data to w with default config.
func Dump(w io.Writer, data []byte) error {
	return DumpWithConfig(w, data, DefaultConfig())
}

// DumpWithConfig renders every MessagePack value in data to w.
// Decoding stops at the first error; lines already emitted for fully
// decoded values stay in the sink. Empty input emits nothing.
func DumpWithConfig(w io.Writer, data []byte, cfg Config) error {
	return NewDumper(w, data, cfg).Run()
}

// Run decodes top-level values at nesting level 0 until the buffer
// is exhausted.
func (d *Dumper) Run() error {
	for d.dec.Remaining() > 0 {
		if err := d.dumpValue(0); err != nil {
			return err
		}
	}
	return nil
}

// dumpValue decodes exactly one value at the cursor, emits its line,
// and recurses into composite children before returning. The cursor
// ends up past the value and all of its descendants.
func (d *Dumper) dumpValue(level int) error {
	start := d.dec.Position()
	format, err := d.dec.readByte()
	if err != nil {
		return err
	}

	// Positive fixint: 0xxxxxxx
	if isPositiveFixint(format) {
		return d.emit(format, start, level, strconv.FormatUint(uint64(format), 10))
	}

	// Negative fixint: 111xxxxx
	if isNegativeFixint(format) {
		return d.emit(format, start, level, strconv.FormatInt(int64(int8(format)), 10))
	}

	// Fixmap: 1000xxxx
	if isFixmap(format) {
		return d.dumpMap(format, start, level, fixmapLen(format))
	}

	// Fixarray: 1001xxxx
	if isFixarray(format) {
		return d.dumpArray(format, start, level, fixarrayLen(format))
	}

	// Fixstr: 101xxxxx
	if isFixstr(format) {
		return d.dumpString(format, start, level, fixstrLen(format))
	}

	switch format {
	case formatNil:
		return d.emit(format, start, level, "nil")

	case formatFalse:
		return d.emit(format, start, level, "false")
	case formatTrue:
		return d.emit(format, start, level, "true")

	case formatUint8:
		v, err := d.dec.readUint8()
		if err != nil {
			return err
		}
		return d.emit(format, start, level, strconv.FormatUint(uint64(v), 10))
	case formatUint16:
		v, err := d.dec.readUint16()
		if err != nil {
			return err
		}
		return d.emit(format, start, level, strconv.FormatUint(uint64(v), 10))
	case formatUint32:
		v, err := d.dec.readUint32()
		if err != nil {
			return err
		}
		return d.emit(format, start, level, strconv.FormatUint(uint64(v), 10))
	case formatUint64:
		v, err := d.dec.readUint64()
		if err != nil {
			return err
		}
		return d.emit(format, start, level, strconv.FormatUint(v, 10))

	case formatInt8:
		v, err := d.dec.readInt8()
		if err != nil {
			return err
		}
		return d.emit(format, start, level, strconv.FormatInt(int64(v), 10))
	case formatInt16:
		v, err := d.dec.readInt16()
		if err != nil {
			return err
		}
		return d.emit(format, start, level, strconv.FormatInt(int64(v), 10))
	case formatInt32:
		v, err := d.dec.readInt32()
		if err != nil {
			return err
		}
		return d.emit(format, start, level, strconv.FormatInt(int64(v), 10))
	case formatInt64:
		v, err := d.dec.readInt64()
		if err != nil {
			return err
		}
		return d.emit(format, start, level, strconv.FormatInt(v, 10))

	case formatFloat32:
		v, err := d.dec.readFloat32()
		if err != nil {
			return err
		}
		return d.emit(format, start, level, strconv.FormatFloat(float64(v), 'g', -1, 32))
	case formatFloat64:
		v, err := d.dec.readFloat64()
		if err != nil {
			return err
		}
		return d.emit(format, start, level, strconv.FormatFloat(v, 'g', -1, 64))

	case formatStr8:
		length, err := d.dec.readUint8()
		if err != nil {
			return err
		}
		return d.dumpString(format, start, level, int(length))
	case formatStr16:
		length, err := d.dec.readUint16()
		if err != nil {
			return err
		}
		return d.dumpString(format, start, level, int(length))
	case formatStr32:
		length, err := d.dec.readUint32()
		if err != nil {
			return err
		}
		return d.dumpString(format, start, level, int(length))

	case formatBin8:
		length, err := d.dec.readUint8()
		if err != nil {
			return err
		}
		return d.dumpBinary(format, start, level, int(length))
	case formatBin16:
		length, err := d.dec.readUint16()
		if err != nil {
			return err
		}
		return d.dumpBinary(format, start, level, int(length))
	case formatBin32:
		length, err := d.dec.readUint32()
		if err != nil {
			return err
		}
		return d.dumpBinary(format, start, level, int(length))

	case formatArray16:
		count, err := d.dec.readUint16()
		if err != nil {
			return err
		}
		return d.dumpArray(format, start, level, int(count))
	case formatArray32:
		count, err := d.dec.readUint32()
		if err != nil {
			return err
		}
		return d.dumpArray(format, start, level, int(count))

	case formatMap16:
		count, err := d.dec.readUint16()
		if err != nil {
			return err
		}
		return d.dumpMap(format, start, level, int(count))
	case formatMap32:
		count, err := d.dec.readUint32()
		if err != nil {
			return err
		}
		return d.dumpMap(format, start, level, int(count))

	// Fixed ext
	case formatFixExt1:
		return d.dumpExt(format, start, level, 1)
	case formatFixExt2:
		return d.dumpExt(format, start, level, 2)
	case formatFixExt4:
		return d.dumpExt(format, start, level, 4)
	case formatFixExt8:
		return d.dumpExt(format, start, level, 8)
	case formatFixExt16:
		return d.dumpExt(format, start, level, 16)

	// Variable ext
	case formatExt8:
		length, err := d.dec.readUint8()
		if err != nil {
			return err
		}
		return d.dumpExt(format, start, level, int(length))
	case formatExt16:
		length, err := d.dec.readUint16()
		if err != nil {
			return err
		}
		return d.dumpExt(format, start, level, int(length))
	case formatExt32:
		length, err := d.dec.readUint32()
		if err != nil {
			return err
		}
		return d.dumpExt(format, start, level, int(length))

	default:
		// 0xc1, the only byte with no assigned encoding. Its length
		// is undefined, so there is nothing to skip.
		return ErrReservedFormat
	}
}

// emit renders a completed leaf value.
func (d *Dumper) emit(format byte, start, level int, text string) error {
	return d.out.emit(token{
		name:  FormatName(format),
		start: start,
		level: level,
		text:  text,
	})
}

// dumpString reads length payload bytes and renders them quoted.
// The bytes go out verbatim between the quotes, embedded quote and
// control characters included.
func (d *Dumper) dumpString(format byte, start, level, length int) error {
	b, err := d.dec.readBytes(length)
	if err != nil {
		return err
	}
	return d.emit(format, start, level, `"`+string(b)+`"`)
}

// dumpBinary reads length payload bytes and renders them as
// uppercase hex.
func (d *Dumper) dumpBinary(format byte, start, level, length int) error {
	b, err := d.dec.readBytes(length)
	if err != nil {
		return err
	}
	return d.emit(format, start, level, fmt.Sprintf("%X", b))
}

// dumpArray emits the array(N) header line, then decodes exactly N
// children one level deeper.
func (d *Dumper) dumpArray(format byte, start, level, count int) error {
	if err := d.dec.enterContainer(); err != nil {
		return err
	}
	defer d.dec.leaveContainer()

	if err := d.emit(format, start, level, "array("+strconv.Itoa(count)+")"); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		if err := d.dumpValue(level + 1); err != nil {
			return err
		}
	}
	return nil
}

// dumpMap emits the map(N) header line, then decodes exactly 2N
// children one level deeper in key, value, key, value order. Keys
// and values are independent value decodes, each with its own line.
func (d *Dumper) dumpMap(format byte, start, level, count int) error {
	if err := d.dec.enterContainer(); err != nil {
		return err
	}
	defer d.dec.leaveContainer()

	if err := d.emit(format, start, level, "map("+strconv.Itoa(count)+")"); err != nil {
		return err
	}
	for i := 0; i < count*2; i++ {
		if err := d.dumpValue(level + 1); err != nil {
			return err
		}
	}
	return nil
}

// dumpExt reads the type code and length payload bytes. The type
// code precedes the payload on the wire for both fixed and variable
// ext encodings; variable encodings have their length field read by
// the caller.
func (d *Dumper) dumpExt(format byte, start, level, length int) error {
	extType, err := d.dec.readInt8()
	if err != nil {
		return err
	}
	data, err := d.dec.readBytes(length)
	if err != nil {
		return err
	}
	text := fmt.Sprintf("ext(type=%d, len=%d)", extType, length)
	if length > 0 {
		text += fmt.Sprintf(" %X", data)
	}
	return d.emit(format, start, level, text)
}
