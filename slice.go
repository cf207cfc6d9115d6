package pymap3d

import (
	"github.com/golang/geo/s1"
	"gonum.org/v1/gonum/floats"
)

// applySlice evaluates a per-point radian conversion over a slice of
// latitudes, returning a freshly allocated slice of the same length.
// The input slice is never modified. Applying the point function
// independently to each element keeps the pole branches of the
// isometric and conformal conversions from contaminating neighboring
// elements.
func applySlice(lats []float64, deg bool, point func(float64) float64) []float64 {
	out := make([]float64, len(lats))
	if deg {
		floats.ScaleTo(out, s1.Degree.Radians(), lats)
	} else {
		copy(out, lats)
	}
	for i, lat := range out {
		out[i] = point(lat)
	}
	if deg {
		floats.Scale(s1.Radian.Degrees(), out)
	}
	return out
}

func resolve(ell *Ellipsoid) *Ellipsoid {
	if ell == nil {
		return WGS84
	}
	return ell
}

// GeodeticToGeocentricSlice converts each geodetic latitude in
// geodeticLats to a geocentric latitude. A nil ellipsoid selects
// WGS84. If deg is true the inputs and outputs are in degrees,
// otherwise radians.
func GeodeticToGeocentricSlice(geodeticLats []float64, ell *Ellipsoid, deg bool) []float64 {
	e := resolve(ell).eccentricity
	return applySlice(geodeticLats, deg, func(phi float64) float64 {
		return geocentricLat(phi, e)
	})
}

// GeocentricToGeodeticSlice converts each geocentric latitude in
// geocentricLats to a geodetic latitude. A nil ellipsoid selects
// WGS84. If deg is true the inputs and outputs are in degrees,
// otherwise radians.
func GeocentricToGeodeticSlice(geocentricLats []float64, ell *Ellipsoid, deg bool) []float64 {
	e := resolve(ell).eccentricity
	return applySlice(geocentricLats, deg, func(psi float64) float64 {
		return geodeticLatFromGeocentric(psi, e)
	})
}

// GeodeticToIsometricSlice converts each geodetic latitude in
// geodeticLats to an isometric latitude. Elements within 1e-9 radians
// of the poles convert to +/- Inf. A nil ellipsoid selects WGS84. If
// deg is true the inputs and outputs are in degrees, otherwise
// radians.
func GeodeticToIsometricSlice(geodeticLats []float64, ell *Ellipsoid, deg bool) []float64 {
	e := resolve(ell).eccentricity
	return applySlice(geodeticLats, deg, func(phi float64) float64 {
		return isometricLat(phi, e)
	})
}

// IsometricToGeodeticSlice converts each isometric latitude in
// isometricLats to a geodetic latitude. A nil ellipsoid selects WGS84.
// If deg is true the inputs and outputs are in degrees, otherwise
// radians.
func IsometricToGeodeticSlice(isometricLats []float64, ell *Ellipsoid, deg bool) []float64 {
	e := resolve(ell).eccentricity
	return applySlice(isometricLats, deg, func(psi float64) float64 {
		return geodeticLatFromIsometric(psi, e)
	})
}

// GeodeticToConformalSlice converts each geodetic latitude in
// geodeticLats to a conformal latitude. Elements at exactly +Pi/2
// convert to +Pi/2 rather than dividing by zero. A nil ellipsoid
// selects WGS84. If deg is true the inputs and outputs are in degrees,
// otherwise radians.
func GeodeticToConformalSlice(geodeticLats []float64, ell *Ellipsoid, deg bool) []float64 {
	e := resolve(ell).eccentricity
	return applySlice(geodeticLats, deg, func(phi float64) float64 {
		return conformalLat(phi, e)
	})
}

// ConformalToGeodeticSlice converts each conformal latitude in
// conformalLats to a geodetic latitude. A nil ellipsoid selects WGS84.
// If deg is true the inputs and outputs are in degrees, otherwise
// radians.
func ConformalToGeodeticSlice(conformalLats []float64, ell *Ellipsoid, deg bool) []float64 {
	e := resolve(ell).eccentricity
	return applySlice(conformalLats, deg, func(chi float64) float64 {
		return geodeticLatFromConformal(chi, e)
	})
}

// GeodeticToRectifyingSlice converts each geodetic latitude in
// geodeticLats to a rectifying latitude. A nil ellipsoid selects
// WGS84. If deg is true the inputs and outputs are in degrees,
// otherwise radians.
func GeodeticToRectifyingSlice(geodeticLats []float64, ell *Ellipsoid, deg bool) []float64 {
	n := resolve(ell).thirdFlattening
	return applySlice(geodeticLats, deg, func(phi float64) float64 {
		return rectifyingLat(phi, n)
	})
}

// RectifyingToGeodeticSlice converts each rectifying latitude in
// rectifyingLats to a geodetic latitude. A nil ellipsoid selects
// WGS84. If deg is true the inputs and outputs are in degrees,
// otherwise radians.
func RectifyingToGeodeticSlice(rectifyingLats []float64, ell *Ellipsoid, deg bool) []float64 {
	n := resolve(ell).thirdFlattening
	return applySlice(rectifyingLats, deg, func(mu float64) float64 {
		return geodeticLatFromRectifying(mu, n)
	})
}

// GeodeticToAuthalicSlice converts each geodetic latitude in
// geodeticLats to an authalic latitude. A nil ellipsoid selects WGS84.
// If deg is true the inputs and outputs are in degrees, otherwise
// radians.
func GeodeticToAuthalicSlice(geodeticLats []float64, ell *Ellipsoid, deg bool) []float64 {
	e := resolve(ell).eccentricity
	return applySlice(geodeticLats, deg, func(phi float64) float64 {
		return authalicLat(phi, e)
	})
}

// AuthalicToGeodeticSlice converts each authalic latitude in
// authalicLats to a geodetic latitude. A nil ellipsoid selects WGS84.
// If deg is true the inputs and outputs are in degrees, otherwise
// radians.
func AuthalicToGeodeticSlice(authalicLats []float64, ell *Ellipsoid, deg bool) []float64 {
	e := resolve(ell).eccentricity
	return applySlice(authalicLats, deg, func(xi float64) float64 {
		return geodeticLatFromAuthalic(xi, e)
	})
}

// GeodeticToParametricSlice converts each geodetic latitude in
// geodeticLats to a parametric (reduced) latitude. A nil ellipsoid
// selects WGS84. If deg is true the inputs and outputs are in degrees,
// otherwise radians.
func GeodeticToParametricSlice(geodeticLats []float64, ell *Ellipsoid, deg bool) []float64 {
	e := resolve(ell).eccentricity
	return applySlice(geodeticLats, deg, func(phi float64) float64 {
		return parametricLat(phi, e)
	})
}

// ParametricToGeodeticSlice converts each parametric (reduced)
// latitude in parametricLats to a geodetic latitude. A nil ellipsoid
// selects WGS84. If deg is true the inputs and outputs are in degrees,
// otherwise radians.
func ParametricToGeodeticSlice(parametricLats []float64, ell *Ellipsoid, deg bool) []float64 {
	e := resolve(ell).eccentricity
	return applySlice(parametricLats, deg, func(beta float64) float64 {
		return geodeticLatFromParametric(beta, e)
	})
}
