package amd64enc

import "encoding/binary"

// CodeBuf is the raw byte stream produced by the encoder, with the
// little-endian u64 append helper spec.md's data model calls out
// explicitly (used when materializing absolute trampoline addresses as
// immediates).
type CodeBuf struct {
	bytes []byte
}

func (c *CodeBuf) Len() int { return len(c.bytes) }

func (c *CodeBuf) Bytes() []byte { return c.bytes }

func (c *CodeBuf) AppendByte(b byte) { c.bytes = append(c.bytes, b) }

func (c *CodeBuf) AppendBytes(bs ...byte) { c.bytes = append(c.bytes, bs...) }

func (c *CodeBuf) AppendU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	c.bytes = append(c.bytes, tmp[:]...)
}

func (c *CodeBuf) AppendU64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	c.bytes = append(c.bytes, tmp[:]...)
}

func (c *CodeBuf) PatchU32At(offset int, v uint32) {
	binary.LittleEndian.PutUint32(c.bytes[offset:offset+4], v)
}

// LabelMap maps a symbolic label name to the byte offset it resolves to,
// populated during encoding pass 1.
type LabelMap map[string]int

// patch is one (offset, label-name) pair: offset is where a 32-bit
// relative displacement placeholder was written during pass 1 and must be
// filled in during pass 2.
type patch struct {
	offset int
	label  string
}

// PatchList is the ordered set of pending patches from pass 1.
type PatchList []patch
