package scene

import (
	"fmt"
	"unsafe"

	"github.com/splurf/blazed-demo/glx"
)

// fakeGL records every context call the scene layer makes so tests can
// verify upload layout, bind ordering and buffer lifetime without a live
// GL context.

type upload struct {
	target glx.Enum
	size   int
	vao    glx.VertexArray // vertex array bound during the upload
	buf    glx.Buffer      // buffer bound at target during the upload
}

type attrib struct {
	index  uint32
	size   int32
	xtype  glx.Enum
	stride int32
	offset uintptr
}

type fakeGL struct {
	nextName uint32

	failArrays   bool
	failBufferAt int // 1-based CreateBuffer call that fails, 0 = never
	bufferCalls  int

	liveArrays  map[glx.VertexArray]bool
	liveBuffers map[glx.Buffer]bool

	releasedArrays  []glx.VertexArray
	releasedBuffers []glx.Buffer

	boundVAO  glx.VertexArray
	boundBufs map[glx.Enum]glx.Buffer

	uploads []upload
	enabled []uint32
	attribs []attrib

	// lifetime violations such as double deletes
	violations []string
}

var _ glx.Context = (*fakeGL)(nil)

func newFakeGL() *fakeGL {
	return &fakeGL{
		liveArrays:  map[glx.VertexArray]bool{},
		liveBuffers: map[glx.Buffer]bool{},
		boundBufs:   map[glx.Enum]glx.Buffer{},
	}
}

func (f *fakeGL) CreateVertexArray() (glx.VertexArray, error) {
	if f.failArrays {
		return 0, fmt.Errorf("fake: %w", glx.ErrAllocFailed)
	}
	f.nextName++
	va := glx.VertexArray(f.nextName)
	f.liveArrays[va] = true
	return va, nil
}

func (f *fakeGL) CreateBuffer() (glx.Buffer, error) {
	f.bufferCalls++
	if f.failBufferAt != 0 && f.bufferCalls == f.failBufferAt {
		return 0, fmt.Errorf("fake: %w", glx.ErrAllocFailed)
	}
	f.nextName++
	buf := glx.Buffer(f.nextName)
	f.liveBuffers[buf] = true
	return buf, nil
}

func (f *fakeGL) BindVertexArray(va glx.VertexArray) {
	f.boundVAO = va
}

func (f *fakeGL) BindBuffer(target glx.Enum, buf glx.Buffer) {
	f.boundBufs[target] = buf
}

func (f *fakeGL) BufferData(target glx.Enum, size int, data unsafe.Pointer, usage glx.Enum) {
	f.uploads = append(f.uploads, upload{
		target: target,
		size:   size,
		vao:    f.boundVAO,
		buf:    f.boundBufs[target],
	})
}

func (f *fakeGL) EnableVertexAttribArray(index uint32) {
	f.enabled = append(f.enabled, index)
}

func (f *fakeGL) VertexAttribPointer(index uint32, size int32, xtype glx.Enum, normalized bool, stride int32, offset uintptr) {
	f.attribs = append(f.attribs, attrib{
		index:  index,
		size:   size,
		xtype:  xtype,
		stride: stride,
		offset: offset,
	})
}

func (f *fakeGL) DeleteVertexArray(va glx.VertexArray) {
	if va == 0 {
		return
	}
	if !f.liveArrays[va] {
		f.violations = append(f.violations, fmt.Sprintf("double delete of vertex array %d", va))
		return
	}
	delete(f.liveArrays, va)
	f.releasedArrays = append(f.releasedArrays, va)
}

func (f *fakeGL) DeleteBuffer(buf glx.Buffer) {
	if buf == 0 {
		return
	}
	if !f.liveBuffers[buf] {
		f.violations = append(f.violations, fmt.Sprintf("double delete of buffer %d", buf))
		return
	}
	delete(f.liveBuffers, buf)
	f.releasedBuffers = append(f.releasedBuffers, buf)
}

func (f *fakeGL) live() (arrays, buffers int) {
	return len(f.liveArrays), len(f.liveBuffers)
}
