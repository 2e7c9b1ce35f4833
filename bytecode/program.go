// Package bytecode defines Program, the flat byte-addressable bytecode
// stream produced by the compiler and consumed by the vm (spec §3.1).
//
// A Program is an immutable, contiguous byte buffer. Multi-byte values
// are written with raw, unaligned, little-endian encodings. Because the
// byte order is fixed rather than host order, the encoding is the same on
// every machine. This
// mirrors the original_source/codegen.cpp Emit<T> / Program::Read<T>
// pattern (memcpy into/out of a byte vector) translated into an explicit
// little-endian helper rather than bit-casting, per spec §9's design
// note preferring an explicit serialization helper.
package bytecode

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"github.com/imp-lang/imp/op"
)

// Sizes, in bytes, of each opcode's immediate operand(s). Kept alongside
// the Program type (rather than in package op) because they describe the
// wire encoding, which is this package's contract to own.
const (
	sizeOpcode = 1
	sizeAddr   = 8 // size_t-equivalent byte offset
	sizeInt64  = 8
	sizeUint32 = 4
)

// Program is an owned, immutable byte buffer plus the ability to read
// typed values at a caller-managed cursor. It is movable and safe to
// share across goroutines once built, since it is never mutated after
// construction (spec §5).
type Program struct {
	code []byte
	id   uuid.UUID
}

// NewProgram wraps a finished byte buffer. Ownership of code transfers to
// the Program; callers must not retain or mutate the slice afterwards.
func NewProgram(code []byte) *Program {
	return &Program{code: code, id: uuid.New()}
}

// ID returns a build-id for this Program, stamped once at construction.
// Used by the dis package to tag disassembly output; it has no semantic
// effect on execution.
func (p *Program) ID() string { return p.id.String() }

// Len returns the length of the bytecode stream in bytes.
func (p *Program) Len() int { return len(p.code) }

// Bytes returns the raw bytecode stream. Callers must treat it as
// read-only.
func (p *Program) Bytes() []byte { return p.code }

// OpcodeAt returns the opcode at the given byte offset, without advancing
// any cursor. Used by the disassembler.
func (p *Program) OpcodeAt(offset int) op.Code { return op.Code(p.code[offset]) }

// Cursor is a read position into a Program, maintained by the
// vm as its program counter (pc). It is a thin value type so the vm can
// freely save/restore it (e.g. pushing a return address).
type Cursor struct {
	prog *Program
	pos  int
}

// NewCursor returns a Cursor positioned at byte offset 0.
func (p *Program) NewCursor() Cursor { return Cursor{prog: p, pos: 0} }

// Pos returns the cursor's current byte offset.
func (c Cursor) Pos() int { return c.pos }

// Seek repositions the cursor at an absolute byte offset. Used by CALL,
// JUMP and JUMP_FALSE.
func (c *Cursor) Seek(offset int) { c.pos = offset }

// AtEnd reports whether the cursor has consumed the entire stream.
func (c Cursor) AtEnd() bool { return c.pos >= len(c.prog.code) }

// ReadOp reads one opcode byte and advances past it.
func (c *Cursor) ReadOp() op.Code {
	b := c.prog.code[c.pos]
	c.pos += sizeOpcode
	return op.Code(b)
}

// ReadAddr reads an 8-byte byte-offset immediate and advances past it.
func (c *Cursor) ReadAddr() int {
	v := binary.LittleEndian.Uint64(c.prog.code[c.pos : c.pos+sizeAddr])
	c.pos += sizeAddr
	return int(v)
}

// ReadInt64 reads an 8-byte signed integer immediate and advances past it.
func (c *Cursor) ReadInt64() int64 {
	v := binary.LittleEndian.Uint64(c.prog.code[c.pos : c.pos+sizeInt64])
	c.pos += sizeInt64
	return int64(v)
}

// ReadUint32 reads a 4-byte unsigned integer immediate and advances past it.
func (c *Cursor) ReadUint32() uint32 {
	v := binary.LittleEndian.Uint32(c.prog.code[c.pos : c.pos+sizeUint32])
	c.pos += sizeUint32
	return v
}

// Writer accumulates a bytecode stream during compilation. It is the
// emitter half of the codegen/vm contract: everything written here must
// be readable back by the Cursor methods above using matching widths.
type Writer struct {
	code []byte
}

// NewWriter creates an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Offset returns the current end of the stream — the byte offset the
// next Write call will write at. This is what EmitLabel records as a
// label's resolved address (spec §3.5).
func (w *Writer) Offset() int { return len(w.code) }

// WriteOp appends one opcode byte.
func (w *Writer) WriteOp(o op.Code) {
	w.code = append(w.code, byte(o))
}

// WriteAddr appends an 8-byte byte-offset immediate.
func (w *Writer) WriteAddr(addr int) {
	var buf [sizeAddr]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(addr))
	w.code = append(w.code, buf[:]...)
}

// WriteInt64 appends an 8-byte signed integer immediate.
func (w *Writer) WriteInt64(n int64) {
	var buf [sizeInt64]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	w.code = append(w.code, buf[:]...)
}

// WriteUint32 appends a 4-byte unsigned integer immediate.
func (w *Writer) WriteUint32(n uint32) {
	var buf [sizeUint32]byte
	binary.LittleEndian.PutUint32(buf[:], n)
	w.code = append(w.code, buf[:]...)
}

// PatchAddr overwrites the 8-byte address immediate at byte offset
// `site` — the fixup mechanism from spec §3.5: EmitLabel rewrites every
// previously recorded placeholder once the label's address is known.
func (w *Writer) PatchAddr(site, addr int) {
	binary.LittleEndian.PutUint64(w.code[site:site+sizeAddr], uint64(addr))
}

// Program finishes the stream and returns an immutable Program. The
// Writer must not be used afterwards.
func (w *Writer) Program() *Program {
	return NewProgram(w.code)
}

func (p *Program) String() string {
	return fmt.Sprintf("Program{id=%s, %d bytes}", p.id, len(p.code))
}
