package scene

// Static geometry for the two stock cube variants. Both span the unit cube
// between (-1,-1,-1) and (1,1,1) in object space; position and size come
// from the model matrix.
//
//	  h +------+ e        y
//	    |\     |\         |
//	    | \    | \        +--x
//	    |b +------+ a      \
//	  g +--|---+ f|         z
//	     \ |    \ |
//	      \|     \|
//	     c +------+ d

// Flat cube: the 8 corners, position only, drawn as one triangle strip.
// The strip walks all six faces in a single traversal, using degenerate
// triangles to jump between them, hence the 14 indices.
var flatCubeVertices = []float32{
	1, 1, -1, // top right back     [00]
	-1, 1, -1, // top left back      [01]
	1, 1, 1, // top right front    [02]
	-1, 1, 1, // top left front     [03]
	1, -1, -1, // bottom right back  [04]
	-1, -1, -1, // bottom left back   [05]
	-1, -1, 1, // bottom left front  [06]
	1, -1, 1, // bottom right front [07]
}

var flatCubeIndices = []uint8{
	0, 1, 4, 5, 6, 1, 3, 0, 2, 4, 7, 6, 2, 3,
}

// Shaded cube: 4 vertices per face so normals stay flat across each face,
// 6 floats per vertex (position, outward normal), drawn as triangles.
var shadedCubeVertices = []float32{
	// back
	-1, -1, -1, 0, 0, -1, // [00]
	-1, 1, -1, 0, 0, -1, // [01]
	1, -1, -1, 0, 0, -1, // [02]
	1, 1, -1, 0, 0, -1, // [03]

	// front
	-1, -1, 1, 0, 0, 1, // [04]
	-1, 1, 1, 0, 0, 1, // [05]
	1, -1, 1, 0, 0, 1, // [06]
	1, 1, 1, 0, 0, 1, // [07]

	// left
	-1, -1, 1, -1, 0, 0, // [08]
	-1, 1, 1, -1, 0, 0, // [09]
	-1, -1, -1, -1, 0, 0, // [10]
	-1, 1, -1, -1, 0, 0, // [11]

	// right
	1, -1, 1, 1, 0, 0, // [12]
	1, 1, 1, 1, 0, 0, // [13]
	1, -1, -1, 1, 0, 0, // [14]
	1, 1, -1, 1, 0, 0, // [15]

	// top
	-1, 1, -1, 0, 1, 0, // [16]
	-1, 1, 1, 0, 1, 0, // [17]
	1, 1, -1, 0, 1, 0, // [18]
	1, 1, 1, 0, 1, 0, // [19]

	// bottom
	-1, -1, -1, 0, -1, 0, // [20]
	-1, -1, 1, 0, -1, 0, // [21]
	1, -1, -1, 0, -1, 0, // [22]
	1, -1, 1, 0, -1, 0, // [23]
}

var shadedCubeIndices = []uint8{
	// back
	0, 3, 2, 1, 3, 0,
	// front
	6, 7, 4, 4, 7, 5,
	// left
	8, 11, 10, 9, 11, 8,
	// right
	14, 15, 12, 12, 15, 13,
	// top
	16, 19, 18, 17, 19, 16,
	// bottom
	22, 23, 20, 20, 23, 21,
}
