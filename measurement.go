package sweep

import (
	"encoding/json"
	"math"
)

// Measurements are the samples of one scan, in the exact order and count
// the driver produced them.
type Measurements []*Measurement

// Len returns the number of measurements present.
func (ms Measurements) Len() int {
	return len(ms)
}

// Swap swaps two measurements positionally.
func (ms Measurements) Swap(i, j int) {
	ms[i], ms[j] = ms[j], ms[i]
}

// Less compares two measurements first by their angles and then by
// their distances if the angles are equal.
func (ms Measurements) Less(i, j int) bool {
	if ms[i].data.AngleDeg < ms[j].data.AngleDeg {
		return true
	}
	if ms[i].data.AngleDeg == ms[j].data.AngleDeg {
		return ms[i].data.Distance < ms[j].data.Distance
	}
	return false
}

// ClosestToDegree returns the measurement, if any, whose angle is closest
// to the given degree.
func (ms Measurements) ClosestToDegree(degree float64) *Measurement {
	var best *Measurement
	bestDiff := math.MaxFloat64

	for _, m := range ms {
		diff := angleDiffDeg(degree, m.data.AngleDeg)
		if diff < bestDiff {
			bestDiff = diff
			best = m
		}
	}

	return best
}

// A Measurement represents a single point detected by the scanner.
type Measurement struct {
	data measurementData
}

type measurementData struct {
	// Angle is the angle in radians clockwise from the front of the device.
	Angle float64 `json:"angle"`

	// AngleDeg is the angle in degrees clockwise from the front of the device.
	AngleDeg float64 `json:"angle_deg"`

	// Distance is the distance to the point in centimeters.
	Distance float64 `json:"distance"`

	// X is the x coordinate of the point.
	X float64 `json:"x"`

	// Y is the y coordinate of the point.
	Y float64 `json:"y"`
}

// NewMeasurement computes a new measurement based on the given angle
// (degrees) and distance (centimeters).
func NewMeasurement(angleDegrees, distance float64) *Measurement {
	rad := degToRad(angleDegrees)
	// The view is from x,y=0,0 at the top left of a containing matrix
	// 0°   -  (0,-1) // Up
	// 90°  -  (1, 0) // Right
	// 180° -  (0, 1) // Down
	// 270° -  (-1,0) // Left
	x := distance * math.Sin(rad)
	y := distance * -math.Cos(rad)
	return &Measurement{
		data: measurementData{
			Angle:    rad,
			AngleDeg: angleDegrees,
			Distance: distance,
			X:        x,
			Y:        y,
		},
	}
}

// MarshalJSON serializes the measurement to JSON.
func (m *Measurement) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.data)
}

// UnmarshalJSON deserializes into the measurement from JSON.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &m.data)
}

// AngleRad returns the angle in radians clockwise from the front of the device.
func (m *Measurement) AngleRad() float64 {
	return m.data.Angle
}

// AngleDeg returns the angle in degrees clockwise from the front of the device.
func (m *Measurement) AngleDeg() float64 {
	return m.data.AngleDeg
}

// Distance returns the distance to the point in centimeters.
func (m *Measurement) Distance() float64 {
	return m.data.Distance
}

// Coords returns the Cartesian coordinates of the point.
func (m *Measurement) Coords() (float64, float64) {
	return m.data.X, m.data.Y
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func angleDiffDeg(a1, a2 float64) float64 {
	return math.Min(math.Abs(a1-a2), 360-math.Abs(a1-a2))
}
