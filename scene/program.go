package scene

import (
	"github.com/splurf/blazed-demo/glx"
)

// ProgramKind tags a shader program with the vertex layout it expects, so a
// caller can ask for "a cube that fits this program" without knowing which
// geometry that implies.
type ProgramKind uint8

const (
	// ProgramSimple shades with a flat color; position-only vertices.
	ProgramSimple ProgramKind = iota
	// ProgramNormal lights per face; vertices carry outward normals.
	ProgramNormal
)

// Program is an opaque shader program handle plus its layout tag. It is
// shared between objects and never owned by them; compiling and deleting
// programs is the consumer's business.
type Program struct {
	handle glx.Program
	kind   ProgramKind
}

func NewProgram(handle glx.Program, kind ProgramKind) Program {
	return Program{handle: handle, kind: kind}
}

func (p Program) Handle() glx.Program { return p.handle }
func (p Program) Kind() ProgramKind   { return p.kind }
