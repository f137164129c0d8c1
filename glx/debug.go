package glx

import (
	"unsafe"

	"github.com/bits-and-blooms/bitset"
)

// Debug wraps a Context and tracks which vertex array and buffer names are
// still alive. Releasing a handle twice, or one that was never created
// through this wrapper, reports through the error hook instead of corrupting GL
// state silently.
//
// Not meant for release builds; every tracked handle costs a bit.
type Debug struct {
	ctx    Context
	errorf func(format string, args ...any)

	liveArrays  bitset.BitSet
	liveBuffers bitset.BitSet
}

var _ Context = (*Debug)(nil)

func NewDebug(ctx Context, errorf func(format string, args ...any)) *Debug {
	if errorf == nil {
		errorf = func(string, ...any) {}
	}
	return &Debug{ctx: ctx, errorf: errorf}
}

func (d *Debug) CreateVertexArray() (VertexArray, error) {
	va, err := d.ctx.CreateVertexArray()
	if err == nil {
		d.liveArrays.Set(uint(va))
	}
	return va, err
}

func (d *Debug) CreateBuffer() (Buffer, error) {
	buf, err := d.ctx.CreateBuffer()
	if err == nil {
		d.liveBuffers.Set(uint(buf))
	}
	return buf, err
}

func (d *Debug) BindVertexArray(va VertexArray) {
	if va != 0 && !d.liveArrays.Test(uint(va)) {
		d.errorf("bind of dead vertex array %d", va)
	}
	d.ctx.BindVertexArray(va)
}

func (d *Debug) BindBuffer(target Enum, buf Buffer) {
	if buf != 0 && !d.liveBuffers.Test(uint(buf)) {
		d.errorf("bind of dead buffer %d", buf)
	}
	d.ctx.BindBuffer(target, buf)
}

func (d *Debug) BufferData(target Enum, size int, data unsafe.Pointer, usage Enum) {
	d.ctx.BufferData(target, size, data, usage)
}

func (d *Debug) EnableVertexAttribArray(index uint32) {
	d.ctx.EnableVertexAttribArray(index)
}

func (d *Debug) VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset uintptr) {
	d.ctx.VertexAttribPointer(index, size, xtype, normalized, stride, offset)
}

func (d *Debug) DeleteVertexArray(va VertexArray) {
	if va == 0 {
		return
	}
	if !d.liveArrays.Test(uint(va)) {
		d.errorf("double delete of vertex array %d", va)
		return
	}
	d.liveArrays.Clear(uint(va))
	d.ctx.DeleteVertexArray(va)
}

func (d *Debug) DeleteBuffer(buf Buffer) {
	if buf == 0 {
		return
	}
	if !d.liveBuffers.Test(uint(buf)) {
		d.errorf("double delete of buffer %d", buf)
		return
	}
	d.liveBuffers.Clear(uint(buf))
	d.ctx.DeleteBuffer(buf)
}

// Leaks reports how many vertex arrays and buffers created through the
// wrapper are still alive.
func (d *Debug) Leaks() (arrays, buffers int) {
	return int(d.liveArrays.Count()), int(d.liveBuffers.Count())
}
