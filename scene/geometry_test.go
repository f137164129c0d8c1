package scene

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlatCubeTables(t *testing.T) {
	require.Len(t, flatCubeVertices, 8*3, "8 position-only vertices")
	require.Len(t, flatCubeIndices, 14, "one strip traversal over 6 faces")

	for _, i := range flatCubeIndices {
		require.Less(t, int(i), 8)
	}
}

func TestShadedCubeTables(t *testing.T) {
	require.Len(t, shadedCubeVertices, 24*6, "4 vertices per face, pos+normal")
	require.Len(t, shadedCubeIndices, 36, "2 triangles per face")

	for _, i := range shadedCubeIndices {
		require.Less(t, int(i), 24)
	}

	// every face quad shares a single unit axis normal
	for face := 0; face < 6; face++ {
		var norm [3]float32
		copy(norm[:], shadedCubeVertices[face*24+3:face*24+6])

		sum := norm[0]*norm[0] + norm[1]*norm[1] + norm[2]*norm[2]
		require.EqualValues(t, 1, sum, "face %d normal not unit length", face)

		for v := 1; v < 4; v++ {
			at := face*24 + v*6 + 3
			require.Equal(t, norm[:], shadedCubeVertices[at:at+3], "face %d vertex %d normal differs", face, v)
		}
	}
}
