// Package glx narrows the OpenGL surface consumed by the scene layer to the
// handful of calls it actually makes: vertex array / buffer creation, binds,
// raw data upload, attribute setup and deletion. Everything behind the
// Context interface is assumed to run on the thread that owns the GL context.
package glx

import (
	"errors"
	"unsafe"
)

// GL object names. The zero value means "no object" for every handle kind,
// matching the GL convention.
type (
	VertexArray uint32
	Buffer      uint32
	Program     uint32
	Enum        uint32
)

// Enum values mirror the GL constants so a Context implementation can pass
// them through unchanged.
const (
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
	StaticDraw         Enum = 0x88E4

	Float        Enum = 0x1406
	UnsignedByte Enum = 0x1401

	Triangles     Enum = 0x0004
	TriangleStrip Enum = 0x0005
)

// ErrAllocFailed is reported when the context refuses to create a vertex
// array or buffer object. It is the only failure a Context may raise; all
// other calls are assumed to complete.
var ErrAllocFailed = errors.New("glx: object allocation failed")

// Context is the slice of a GL context the scene layer depends on.
//
// Binding a zero handle unbinds the target. None of the calls are safe for
// concurrent use; the caller owns the context thread.
type Context interface {
	CreateVertexArray() (VertexArray, error)
	CreateBuffer() (Buffer, error)

	BindVertexArray(VertexArray)
	BindBuffer(target Enum, buf Buffer)

	// BufferData uploads size bytes starting at data to the buffer bound at
	// target. The bytes are taken verbatim; layout is the caller's problem.
	BufferData(target Enum, size int, data unsafe.Pointer, usage Enum)

	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset uintptr)

	// Deleting a zero handle is a no-op. Handles must not be deleted twice.
	DeleteVertexArray(VertexArray)
	DeleteBuffer(Buffer)
}
