package s1

// EarthRadiusMeters is the mean radius of the Earth used by the distance
// conversions when no radius is supplied.
const EarthRadiusMeters = 6371008.8
