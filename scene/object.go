package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/splurf/blazed-demo/glx"
)

const floatSize = 4

// Buffers is the trio of GPU names backing one object's geometry: vertex
// array, vertex buffer, element buffer. The three are created together and
// must be released together; after Release the whole value is dead.
//
// The GL context outlives this type, so nothing is reclaimed implicitly.
// Whoever owns the Object drives Release, exactly once.
type Buffers struct {
	vao glx.VertexArray
	vbo glx.Buffer
	ebo glx.Buffer
}

func (b Buffers) VAO() glx.VertexArray { return b.vao }
func (b Buffers) VBO() glx.Buffer      { return b.vbo }
func (b Buffers) EBO() glx.Buffer      { return b.ebo }

// Release hands all three names back to the context.
func (b Buffers) Release(gl glx.Context) {
	gl.DeleteVertexArray(b.vao)
	gl.DeleteBuffer(b.vbo)
	gl.DeleteBuffer(b.ebo)
}

// Object is one renderable: a shared program handle, the owned Buffers and
// everything a draw call needs. Objects are only built by the constructors
// below, never from a zero value.
type Object struct {
	program  Program
	buffers  Buffers
	data     ObjectData
	mode     glx.Enum
	elemType glx.Enum
	count    int32
}

// NewFlatCube builds a position-only cube (8 vertices, 14 indices) drawn as
// a single triangle strip.
func NewFlatCube(gl glx.Context, program Program, pos, dim Vector, color Color, id ID, kind Kind) (*Object, error) {
	return NewFlatCubeWith(gl, program, NewObjectData(id, color, newRawData(kind, pos, dim)))
}

// NewFlatCubeWith is NewFlatCube with caller-supplied ObjectData.
func NewFlatCubeWith(gl glx.Context, program Program, data ObjectData) (*Object, error) {
	return FromRaw(gl, program, flatCubeVertices, flatCubeIndices, glx.TriangleStrip, glx.UnsignedByte, data, false)
}

// NewCube builds a cube that fits the given program: position-only for a
// simple program, per-face normals (24 vertices, 36 indices) for a
// normal-shaded one.
func NewCube(gl glx.Context, program Program, pos, dim Vector, color Color, id ID, kind Kind) (*Object, error) {
	data := NewObjectData(id, color, newRawData(kind, pos, dim))

	switch program.Kind() {
	case ProgramSimple:
		return NewFlatCubeWith(gl, program, data)
	default:
		return NewCubeWith(gl, program, data)
	}
}

// NewCubeWith builds the normal-shaded cube with caller-supplied ObjectData.
func NewCubeWith(gl glx.Context, program Program, data ObjectData) (*Object, error) {
	return FromRaw(gl, program, shadedCubeVertices, shadedCubeIndices, glx.Triangles, glx.UnsignedByte, data, true)
}

// Index constrains the element types DrawElements accepts.
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

// FromRaw uploads raw vertex and index data into fresh Buffers and wraps
// them into an Object.
//
// The bytes are uploaded verbatim; the caller guarantees the vertex layout
// matches hasNorms. Attribute 0 is the vec3 position; with hasNorms set,
// attribute 1 is a vec3 normal 3 floats into each vertex record and the
// stride widens from 3 to 6 floats. All bindings are cleared before
// returning, and the transform of data is recomputed once so every fresh
// Object carries a valid model matrix.
//
// On an allocation failure every name created by the same attempt is
// released before the error is returned.
func FromRaw[I Index](gl glx.Context, program Program, vertices []float32, indices []I, mode, elemType glx.Enum, data ObjectData, hasNorms bool) (*Object, error) {
	vao, err := gl.CreateVertexArray()
	if err != nil {
		return nil, fmt.Errorf("vertex array: %w", err)
	}

	vbo, err := gl.CreateBuffer()
	if err != nil {
		gl.DeleteVertexArray(vao)
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}

	ebo, err := gl.CreateBuffer()
	if err != nil {
		gl.DeleteBuffer(vbo)
		gl.DeleteVertexArray(vao)
		return nil, fmt.Errorf("element buffer: %w", err)
	}

	stride := int32(3)
	if hasNorms {
		stride += 3
	}

	gl.BindVertexArray(vao)

	gl.BindBuffer(glx.ArrayBuffer, vbo)
	gl.BufferData(glx.ArrayBuffer, len(vertices)*floatSize, slicePtr(vertices), glx.StaticDraw)

	gl.BindBuffer(glx.ElementArrayBuffer, ebo)
	var zero I
	gl.BufferData(glx.ElementArrayBuffer, len(indices)*int(unsafe.Sizeof(zero)), slicePtr(indices), glx.StaticDraw)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, glx.Float, false, stride*floatSize, 0)

	if hasNorms {
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointer(1, 3, glx.Float, false, stride*floatSize, 3*floatSize)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(glx.ArrayBuffer, 0)
	gl.BindBuffer(glx.ElementArrayBuffer, 0)

	data.Recompute()

	return &Object{
		program:  program,
		buffers:  Buffers{vao: vao, vbo: vbo, ebo: ebo},
		data:     data,
		mode:     mode,
		elemType: elemType,
		count:    int32(len(indices)),
	}, nil
}

func slicePtr[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}

func (o *Object) Program() Program       { return o.program }
func (o *Object) Buffers() Buffers       { return o.buffers }
func (o *Object) VAO() glx.VertexArray   { return o.buffers.vao }
func (o *Object) VBO() glx.Buffer        { return o.buffers.vbo }
func (o *Object) EBO() glx.Buffer        { return o.buffers.ebo }
func (o *Object) Mode() glx.Enum         { return o.mode }
func (o *Object) ElemType() glx.Enum     { return o.elemType }
func (o *Object) Count() int32           { return o.count }

// Data exposes the object's data for reads and in-place edits. After
// mutating position or dimensions, call Recompute before the model matrix
// is read again.
func (o *Object) Data() *ObjectData { return &o.data }

func (o *Object) ID() ID            { return o.data.ID() }
func (o *Object) Color() Color      { return o.data.Color() }
func (o *Object) Kind() Kind        { return o.data.Kind() }
func (o *Object) Position() Vector  { return o.data.Position() }
func (o *Object) Model() mgl32.Mat4 { return o.data.Model() }
func (o *Object) IsLight() bool     { return o.data.IsLight() }
