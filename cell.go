package voxcore

import "encoding/binary"

// Cell is one voxel's decoded state. Visible is derived at chunk-visibility
// time and never encoded on the wire.
type Cell struct {
	Type    uint16 // 12-bit material id, [0, MaxTypes)
	Light   uint8  // 4-bit light level, [0, 15]
	Meta    uint8
	Add     uint8
	Visible bool
}

// sentinelCell is returned (by value, copied into a fresh pointer) for
// neighbor reads that fall outside both the owning chunk and any supplied
// neighbor chunk. It reads as transparent, unlit air.
var sentinelCell = Cell{Type: 0, Light: 0, Visible: true}

// DecodeCell unpacks 4 wire bytes into dst, returning whether Type or Light
// changed relative to dst's prior value (used by Chunk.SetFromBytes to
// compute the face-change mask). Panics with FaultDecodeUnderrun if buf is
// shorter than CellByteSize.
func DecodeCell(buf []byte, dst *Cell) (changed bool) {
	if len(buf) < CellByteSize {
		panic(Fault{Code: FaultDecodeUnderrun, Msg: "cell decode: buffer shorter than 4 bytes"})
	}
	word := binary.BigEndian.Uint16(buf[0:2])
	typ := (word >> 4) & 0x0FFF
	light := uint8(word & 0x000F)

	changed = dst.Type != typ || dst.Light != light

	dst.Type = typ
	dst.Light = light
	dst.Meta = buf[2]
	dst.Add = buf[3]
	return changed
}

// EncodeCell packs c into 4 wire bytes at buf[0:4]. Panics with
// FaultDecodeUnderrun if buf is shorter than CellByteSize.
func EncodeCell(c Cell, buf []byte) {
	if len(buf) < CellByteSize {
		panic(Fault{Code: FaultDecodeUnderrun, Msg: "cell encode: buffer shorter than 4 bytes"})
	}
	word := (c.Type<<4)&0xFFF0 | uint16(c.Light&0x0F)
	binary.BigEndian.PutUint16(buf[0:2], word)
	buf[2] = c.Meta
	buf[3] = c.Add
}
