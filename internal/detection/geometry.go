package detection

import (
	"errors"
	"math"
)

// Point is a normalized 2-D landmark coordinate, x and y in [0,1] relative to
// the frame dimensions.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Landmark index sets for the 68-point predictor convention. The detector is
// external; only these subsets of its output are consumed.
var (
	LeftEyeIndices  = [6]int{42, 43, 44, 45, 46, 47}
	RightEyeIndices = [6]int{36, 37, 38, 39, 40, 41}
	MouthIndices    = [20]int{48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60, 61, 62, 63, 64, 65, 66, 67}
)

var (
	// ErrBadLandmarkCount means the input slice does not have the expected
	// number of points for the requested ratio.
	ErrBadLandmarkCount = errors.New("detection: unexpected landmark count")

	// ErrDegenerateShape means the horizontal reference distance collapsed to
	// zero, leaving the ratio undefined for this frame.
	ErrDegenerateShape = errors.New("detection: degenerate landmark shape")
)

// Distance is the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// EyeAspectRatio computes the EAR over six ordered eye landmarks:
//
//	EAR = (||p1-p5|| + ||p2-p4||) / (2 * ||p0-p3||)
//
// Low values indicate a closed eye. The horizontal pair p0/p3 can collapse
// when the detector output degrades; that frame is reported as undefined
// instead of dividing by zero.
func EyeAspectRatio(eye []Point) (float64, error) {
	if len(eye) != 6 {
		return 0, ErrBadLandmarkCount
	}
	horizontal := Distance(eye[0], eye[3])
	if horizontal == 0 {
		return 0, ErrDegenerateShape
	}
	vertical := Distance(eye[1], eye[5]) + Distance(eye[2], eye[4])
	return vertical / (2.0 * horizontal), nil
}

// MouthAspectRatio computes the MAR over the 20-point mouth ring, used for
// yawn detection. High values indicate an open mouth.
func MouthAspectRatio(mouth []Point) (float64, error) {
	if len(mouth) != 20 {
		return 0, ErrBadLandmarkCount
	}
	horizontal := Distance(mouth[0], mouth[6])
	if horizontal == 0 {
		return 0, ErrDegenerateShape
	}
	vertical := Distance(mouth[2], mouth[10]) + Distance(mouth[4], mouth[8])
	return vertical / (2.0 * horizontal), nil
}

// subset picks landmarks by index, failing if the frame has fewer points than
// the convention requires.
func subset(landmarks []Point, indices []int) ([]Point, error) {
	out := make([]Point, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(landmarks) {
			return nil, ErrBadLandmarkCount
		}
		out[i] = landmarks[idx]
	}
	return out, nil
}
