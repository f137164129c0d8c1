package glx

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// OpenGL implements Context on top of the real GL bindings. gl.Init must
// have been called with a current context before any method is used.
type OpenGL struct{}

var _ Context = OpenGL{}

func (OpenGL) CreateVertexArray() (VertexArray, error) {
	var id uint32
	gl.GenVertexArrays(1, &id)
	if id == 0 {
		return 0, fmt.Errorf("%w: vertex array", ErrAllocFailed)
	}
	return VertexArray(id), nil
}

func (OpenGL) CreateBuffer() (Buffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return 0, fmt.Errorf("%w: buffer", ErrAllocFailed)
	}
	return Buffer(id), nil
}

func (OpenGL) BindVertexArray(va VertexArray) {
	gl.BindVertexArray(uint32(va))
}

func (OpenGL) BindBuffer(target Enum, buf Buffer) {
	gl.BindBuffer(uint32(target), uint32(buf))
}

func (OpenGL) BufferData(target Enum, size int, data unsafe.Pointer, usage Enum) {
	gl.BufferData(uint32(target), size, data, uint32(usage))
}

func (OpenGL) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (OpenGL) VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(xtype), normalized, stride, offset)
}

func (OpenGL) DeleteVertexArray(va VertexArray) {
	id := uint32(va)
	if id != 0 {
		gl.DeleteVertexArrays(1, &id)
	}
}

func (OpenGL) DeleteBuffer(buf Buffer) {
	id := uint32(buf)
	if id != 0 {
		gl.DeleteBuffers(1, &id)
	}
}
