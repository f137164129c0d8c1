package scene

import (
	"iter"

	"go.uber.org/zap"

	"github.com/splurf/blazed-demo/glx"
)

// Objects owns every live renderable, keyed by id. Insertion transfers
// ownership of an object's Buffers in; Remove and RemoveKind are the only
// ways ownership leaves again. Not safe for concurrent use; all methods run
// on the context thread.
type Objects struct {
	objects map[ID]*Object
	log     *zap.Logger
}

// NewObjects returns an empty registry. A nil logger disables logging.
func NewObjects(log *zap.Logger) *Objects {
	if log == nil {
		log = zap.NewNop()
	}
	return &Objects{
		objects: map[ID]*Object{},
		log:     log,
	}
}

func (o *Objects) Len() int {
	return len(o.objects)
}

// NewCube creates a normal-shaded cube with the given attributes and adds
// it to the registry. The registry stays unchanged if creation fails.
func (o *Objects) NewCube(gl glx.Context, id ID, program Program, pos, dim Vector, color Color, kind Kind) error {
	return o.NewCubeWith(gl, program, NewObjectData(id, color, newRawData(kind, pos, dim)))
}

// NewCubeWith is NewCube with caller-supplied ObjectData, so an object
// extracted for editing can be rebuilt and re-inserted.
func (o *Objects) NewCubeWith(gl glx.Context, program Program, data ObjectData) error {
	obj, err := NewCubeWith(gl, program, data)
	if err != nil {
		return err
	}
	o.put(gl, obj)
	o.log.Debug("created cube", zap.Uint32("id", uint32(obj.ID())), zap.Stringer("kind", obj.Kind()))
	return nil
}

// NewLight creates a basic flat cube used as a light marker; its color is
// the light color. Light markers never need shaded geometry.
func (o *Objects) NewLight(gl glx.Context, id ID, program Program, pos, dim Vector, color Color) error {
	obj, err := NewFlatCube(gl, program, pos, dim, color, id, Basic)
	if err != nil {
		return err
	}
	o.put(gl, obj)
	o.log.Debug("created light", zap.Uint32("id", uint32(id)))
	return nil
}

// Insert adds an object under its own id, taking ownership of its Buffers.
func (o *Objects) Insert(gl glx.Context, obj *Object) {
	o.put(gl, obj)
}

// put stores obj, releasing the Buffers of any object it displaces so an
// overwrite cannot leak.
func (o *Objects) put(gl glx.Context, obj *Object) {
	id := obj.ID()
	if prev, ok := o.objects[id]; ok {
		prev.Buffers().Release(gl)
		o.log.Debug("overwrote object, released displaced buffers", zap.Uint32("id", uint32(id)))
	}
	o.objects[id] = obj
}

// Data returns the data of one object for in-place edits. Call Recompute
// after mutating position or dimensions.
func (o *Objects) Data(id ID) (*ObjectData, bool) {
	obj, ok := o.objects[id]
	if !ok {
		return nil, false
	}
	return obj.Data(), true
}

// Remove extracts an object, transferring ownership to the caller: the
// registry no longer tracks it and the caller must release its Buffers.
func (o *Objects) Remove(id ID) (*Object, bool) {
	obj, ok := o.objects[id]
	if !ok {
		return nil, false
	}
	delete(o.objects, id)
	o.log.Debug("removed object", zap.Uint32("id", uint32(id)))
	return obj, true
}

// RemoveKind removes every object of the given kind, releasing each one's
// Buffers through the context. This is the only bulk path with automatic
// cleanup; with no matching object it is a no-op.
func (o *Objects) RemoveKind(gl glx.Context, kind Kind) {
	n := 0
	for id, obj := range o.objects {
		if obj.Kind() == kind {
			obj.Buffers().Release(gl)
			delete(o.objects, id)
			n++
		}
	}
	if n > 0 {
		o.log.Debug("removed objects by kind", zap.Stringer("kind", kind), zap.Int("count", n))
	}
}

// All iterates over every object, unordered. The sequence is a non-owning
// view over the registry's contents at iteration time and may be restarted.
func (o *Objects) All() iter.Seq[*Object] {
	return func(yield func(*Object) bool) {
		for _, obj := range o.objects {
			if !yield(obj) {
				return
			}
		}
	}
}

// Lights iterates over every object whose IsLight predicate holds.
func (o *Objects) Lights() iter.Seq[*Object] {
	return func(yield func(*Object) bool) {
		for _, obj := range o.objects {
			if obj.IsLight() && !yield(obj) {
				return
			}
		}
	}
}
