package pluscodes

// CodeArea is the bounding box a code decodes to, described by its
// south-west corner and its dimensions in degrees.
type CodeArea struct {
	SouthLatitude  float64
	WestLongitude  float64
	LatitudeHeight float64
	LongitudeWidth float64
}

// NewCodeArea builds an area from its south-west corner and dimensions.
func NewCodeArea(southLatitude, westLongitude, latitudeHeight, longitudeWidth float64) CodeArea {
	return CodeArea{
		SouthLatitude:  southLatitude,
		WestLongitude:  westLongitude,
		LatitudeHeight: latitudeHeight,
		LongitudeWidth: longitudeWidth,
	}
}

// NorthLatitude returns the latitude of the northern edge.
func (a CodeArea) NorthLatitude() float64 {
	return a.SouthLatitude + a.LatitudeHeight
}

// EastLongitude returns the longitude of the eastern edge.
func (a CodeArea) EastLongitude() float64 {
	return a.WestLongitude + a.LongitudeWidth
}

// LatitudeCenter returns the latitude of the box center.
func (a CodeArea) LatitudeCenter() float64 {
	return a.SouthLatitude + a.LatitudeHeight/2
}

// LongitudeCenter returns the longitude of the box center.
func (a CodeArea) LongitudeCenter() float64 {
	return a.WestLongitude + a.LongitudeWidth/2
}

// Contains reports whether the point falls inside the area. The north and
// east edges are exclusive, matching the grid cell boundaries.
func (a CodeArea) Contains(latitude, longitude float64) bool {
	return latitude >= a.SouthLatitude && latitude < a.NorthLatitude() &&
		longitude >= a.WestLongitude && longitude < a.EastLongitude()
}
