package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"

	"github.com/splurf/blazed-demo/glx"
)

func TestNewFlatCubeUpload(t *testing.T) {
	fake := newFakeGL()
	program := NewProgram(1, ProgramSimple)

	obj, err := NewFlatCube(fake, program, Vector{1, 2, 3}, Vector{4, 5, 6}, Color{1, 0, 0, 1}, 7, Basic)
	require.NoError(t, err)

	require.EqualValues(t, 14, obj.Count())
	require.Equal(t, glx.TriangleStrip, obj.Mode())
	require.Equal(t, glx.UnsignedByte, obj.ElemType())
	require.Equal(t, program, obj.Program())
	require.Equal(t, ID(7), obj.ID())

	require.Len(t, fake.uploads, 2)

	verts := fake.uploads[0]
	require.Equal(t, glx.ArrayBuffer, verts.target)
	require.Equal(t, 8*3*4, verts.size, "8 vertices, 3 floats each")
	require.Equal(t, obj.VAO(), verts.vao, "vertex upload must go into the object's VAO")
	require.Equal(t, obj.VBO(), verts.buf)

	elems := fake.uploads[1]
	require.Equal(t, glx.ElementArrayBuffer, elems.target)
	require.Equal(t, 14, elems.size, "14 one-byte indices")
	require.Equal(t, obj.VAO(), elems.vao)
	require.Equal(t, obj.EBO(), elems.buf)

	require.Equal(t, []uint32{0}, fake.enabled, "flat cubes carry no normal attribute")
	require.Equal(t, []attrib{{index: 0, size: 3, xtype: glx.Float, stride: 12, offset: 0}}, fake.attribs)

	// the upload must leave no bindings behind
	require.EqualValues(t, 0, fake.boundVAO)
	require.EqualValues(t, 0, fake.boundBufs[glx.ArrayBuffer])
	require.EqualValues(t, 0, fake.boundBufs[glx.ElementArrayBuffer])

	// transform is valid without any further call
	want := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(4, 5, 6))
	require.Equal(t, want, obj.Model())
}

func TestNewCubeWithUpload(t *testing.T) {
	fake := newFakeGL()
	program := NewProgram(1, ProgramNormal)

	data := NewObjectData(3, Color{0, 1, 0, 1}, NewPlayerData(Vector{1, 1, 1}))
	obj, err := NewCubeWith(fake, program, data)
	require.NoError(t, err)

	require.EqualValues(t, 36, obj.Count())
	require.Equal(t, glx.Triangles, obj.Mode())
	require.Equal(t, glx.UnsignedByte, obj.ElemType())

	require.Len(t, fake.uploads, 2)
	require.Equal(t, 24*6*4, fake.uploads[0].size, "24 vertices, pos+normal")
	require.Equal(t, 36, fake.uploads[1].size)

	require.Equal(t, []uint32{0, 1}, fake.enabled)
	require.Equal(t, []attrib{
		{index: 0, size: 3, xtype: glx.Float, stride: 24, offset: 0},
		{index: 1, size: 3, xtype: glx.Float, stride: 24, offset: 12},
	}, fake.attribs)

	require.Equal(t, mgl32.Translate3D(1, 1, 1), obj.Model())
}

func TestNewCubeDispatchesOnProgramKind(t *testing.T) {
	fake := newFakeGL()

	flat, err := NewCube(fake, NewProgram(1, ProgramSimple), Vector{}, Vector{1, 1, 1}, Color{}, 1, Basic)
	require.NoError(t, err)
	require.EqualValues(t, 14, flat.Count(), "simple program gets the flat cube")

	shaded, err := NewCube(fake, NewProgram(2, ProgramNormal), Vector{}, Vector{1, 1, 1}, Color{}, 2, Basic)
	require.NoError(t, err)
	require.EqualValues(t, 36, shaded.Count(), "normal program gets the shaded cube")
}

func TestFromRawVertexArrayFailure(t *testing.T) {
	fake := newFakeGL()
	fake.failArrays = true

	obj, err := NewFlatCube(fake, NewProgram(1, ProgramSimple), Vector{}, Vector{}, Color{}, 1, Basic)
	require.ErrorIs(t, err, glx.ErrAllocFailed)
	require.Nil(t, obj)

	arrays, buffers := fake.live()
	require.Zero(t, arrays)
	require.Zero(t, buffers)
}

func TestFromRawBufferFailureReleasesPartials(t *testing.T) {
	for _, failAt := range []int{1, 2} {
		fake := newFakeGL()
		fake.failBufferAt = failAt

		obj, err := NewFlatCube(fake, NewProgram(1, ProgramSimple), Vector{}, Vector{}, Color{}, 1, Basic)
		require.ErrorIs(t, err, glx.ErrAllocFailed)
		require.Nil(t, obj)

		arrays, buffers := fake.live()
		require.Zero(t, arrays, "vertex array leaked when buffer %d failed", failAt)
		require.Zero(t, buffers, "buffer leaked when buffer %d failed", failAt)
		require.Empty(t, fake.violations)
	}
}

func TestBuffersRelease(t *testing.T) {
	fake := newFakeGL()

	obj, err := NewFlatCube(fake, NewProgram(1, ProgramSimple), Vector{}, Vector{}, Color{}, 1, Basic)
	require.NoError(t, err)

	obj.Buffers().Release(fake)

	arrays, buffers := fake.live()
	require.Zero(t, arrays)
	require.Zero(t, buffers)
	require.Equal(t, []glx.VertexArray{obj.VAO()}, fake.releasedArrays)
	require.ElementsMatch(t, []glx.Buffer{obj.VBO(), obj.EBO()}, fake.releasedBuffers)
	require.Empty(t, fake.violations)
}
