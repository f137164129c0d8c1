// Package scene manages the renderable objects of one world: procedural cube
// geometry, upload into GPU buffers and an owning registry that releases
// those buffers exactly once. Everything here runs on the context thread;
// nothing is safe for concurrent use.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ID names one object within a registry. Uniqueness is enforced by the
// registry, ids themselves are just numbers handed out by the server.
type ID uint32

// Color is an RGBA shading color.
type Color = mgl32.Vec4

// Vector is used both as a position and as box dimensions.
type Vector = mgl32.Vec3

// Kind selects the payload variant of an object and the geometry defaults
// that apply to it.
type Kind uint8

const (
	Player Kind = iota
	Basic
)

func (k Kind) String() string {
	switch k {
	case Player:
		return "player"
	case Basic:
		return "basic"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// RawData is the kind-tagged payload of an object. The variant set is
// closed: *PlayerData and *BasicData are the only implementations, so the
// active variant is the kind and the two can never diverge.
type RawData interface {
	Kind() Kind
	Position() Vector

	rawData()
}

// PlayerData is the payload of a player object; players only carry a
// position, their size is implied by the cube geometry.
type PlayerData struct {
	Pos Vector
}

func NewPlayerData(pos Vector) *PlayerData {
	return &PlayerData{Pos: pos}
}

func (d *PlayerData) Kind() Kind       { return Player }
func (d *PlayerData) Position() Vector { return d.Pos }
func (d *PlayerData) rawData()         {}

// BasicData is the payload of a plain world object: a position and the box
// dimensions the unit cube is scaled by.
type BasicData struct {
	Pos Vector
	Dim Vector
}

func NewBasicData(pos, dim Vector) *BasicData {
	return &BasicData{Pos: pos, Dim: dim}
}

func (d *BasicData) Kind() Kind       { return Basic }
func (d *BasicData) Position() Vector { return d.Pos }
func (d *BasicData) rawData()         {}

func newRawData(kind Kind, pos, dim Vector) RawData {
	switch kind {
	case Player:
		return NewPlayerData(pos)
	default:
		return NewBasicData(pos, dim)
	}
}

// ObjectData is the renderer-independent half of an object: identity,
// shading color, the kind-tagged payload and the model matrix derived from
// it. It is embedded by value in Object and never shared.
type ObjectData struct {
	id    ID
	color Color
	raw   RawData
	model mgl32.Mat4
}

func NewObjectData(id ID, color Color, raw RawData) ObjectData {
	return ObjectData{
		id:    id,
		color: color,
		raw:   raw,
	}
}

func (d *ObjectData) ID() ID            { return d.id }
func (d *ObjectData) Color() Color      { return d.color }
func (d *ObjectData) SetColor(c Color)  { d.color = c }
func (d *ObjectData) Kind() Kind        { return d.raw.Kind() }
func (d *ObjectData) Raw() RawData      { return d.raw }
func (d *ObjectData) Position() Vector  { return d.raw.Position() }
func (d *ObjectData) Model() mgl32.Mat4 { return d.model }

// IsLight reports whether the object doubles as a light source. By
// convention only basic markers are used as lights, players never are.
func (d *ObjectData) IsLight() bool {
	return d.Kind() == Basic
}

// SetPosition moves the object. Recompute must be called before the model
// matrix is read again.
func (d *ObjectData) SetPosition(pos Vector) {
	switch raw := d.raw.(type) {
	case *PlayerData:
		raw.Pos = pos
	case *BasicData:
		raw.Pos = pos
	}
}

// Recompute rebuilds the model matrix from the payload. It is a pure
// function of position (and, for basic objects, dimensions) and therefore
// idempotent between mutations.
func (d *ObjectData) Recompute() {
	switch raw := d.raw.(type) {
	case *PlayerData:
		d.model = mgl32.Translate3D(raw.Pos.Elem())
	case *BasicData:
		d.model = mgl32.Translate3D(raw.Pos.Elem()).Mul4(mgl32.Scale3D(raw.Dim.Elem()))
	}
}
