// Package pymap3d provides closed-form conversions between geodetic
// latitude and the auxiliary latitudes (geocentric, isometric,
// conformal, rectifying, authalic and parametric) used in
// map-projection and geodesy computations.
//
// Equations are from J. P. Snyder, "Map Projections - A Working
// Manual", US Geological Survey Professional Paper 1395, US Government
// Printing Office, Washington, DC, 1987, pp. 13-18.
package pymap3d

import (
	"math"

	"github.com/golang/geo/s1"
)

// poleEpsilonRadians is the half-width of the band around +/- Pi/2 in
// which a geodetic latitude is treated as exactly polar by the
// isometric conversion.
const poleEpsilonRadians = 1e-9

// sanitize converts a latitude to radians and resolves a nil ellipsoid
// to the WGS84 default. No bounds validation is performed; out of
// range inputs pass through to the trigonometric formulas.
func sanitize(lat float64, ell *Ellipsoid, deg bool) (float64, *Ellipsoid) {
	if ell == nil {
		ell = WGS84
	}
	if deg {
		lat = (s1.Angle(lat) * s1.Degree).Radians()
	}
	return lat, ell
}

// fromRadians converts a result back to the caller's angle unit.
func fromRadians(lat float64, deg bool) float64 {
	if deg {
		return s1.Angle(lat).Degrees()
	}
	return lat
}

// GeodeticToGeocentric converts a geodetic latitude to a geocentric
// latitude on the given ellipsoid. A nil ellipsoid selects WGS84. If
// deg is true the input and output are in degrees, otherwise radians.
func GeodeticToGeocentric(geodeticLat float64, ell *Ellipsoid, deg bool) float64 {
	phi, ell := sanitize(geodeticLat, ell, deg)
	return fromRadians(geocentricLat(phi, ell.eccentricity), deg)
}

// GeocentricToGeodetic converts a geocentric latitude to a geodetic
// latitude on the given ellipsoid. A nil ellipsoid selects WGS84. If
// deg is true the input and output are in degrees, otherwise radians.
func GeocentricToGeodetic(geocentricLat float64, ell *Ellipsoid, deg bool) float64 {
	psi, ell := sanitize(geocentricLat, ell, deg)
	return fromRadians(geodeticLatFromGeocentric(psi, ell.eccentricity), deg)
}

// GeodeticToIsometric converts a geodetic latitude to an isometric
// latitude, the auxiliary latitude proportional to the spacing of
// parallels on an ellipsoidal Mercator projection. Latitudes within
// 1e-9 radians of the poles convert to +/- Inf. A nil ellipsoid
// selects WGS84. If deg is true the input and output are in degrees,
// otherwise radians.
func GeodeticToIsometric(geodeticLat float64, ell *Ellipsoid, deg bool) float64 {
	phi, ell := sanitize(geodeticLat, ell, deg)
	return fromRadians(isometricLat(phi, ell.eccentricity), deg)
}

// IsometricToGeodetic converts an isometric latitude to a geodetic
// latitude. A nil ellipsoid selects WGS84. If deg is true the input
// and output are in degrees, otherwise radians.
func IsometricToGeodetic(isometricLat float64, ell *Ellipsoid, deg bool) float64 {
	// Isometric latitude is unbounded, so the usual latitude
	// sanitization does not apply; only the angle unit is normalized.
	if deg {
		isometricLat = (s1.Angle(isometricLat) * s1.Degree).Radians()
	}
	if ell == nil {
		ell = WGS84
	}
	return fromRadians(geodeticLatFromIsometric(isometricLat, ell.eccentricity), deg)
}

// GeodeticToConformal converts a geodetic latitude to a conformal
// latitude. A geodetic latitude of exactly +Pi/2 converts to +Pi/2
// rather than dividing by zero. A nil ellipsoid selects WGS84. If deg
// is true the input and output are in degrees, otherwise radians.
func GeodeticToConformal(geodeticLat float64, ell *Ellipsoid, deg bool) float64 {
	phi, ell := sanitize(geodeticLat, ell, deg)
	return fromRadians(conformalLat(phi, ell.eccentricity), deg)
}

// ConformalToGeodetic converts a conformal latitude to a geodetic
// latitude. A nil ellipsoid selects WGS84. If deg is true the input
// and output are in degrees, otherwise radians.
func ConformalToGeodetic(conformalLat float64, ell *Ellipsoid, deg bool) float64 {
	chi, ell := sanitize(conformalLat, ell, deg)
	return fromRadians(geodeticLatFromConformal(chi, ell.eccentricity), deg)
}

// GeodeticToRectifying converts a geodetic latitude to a rectifying
// latitude. A nil ellipsoid selects WGS84. If deg is true the input
// and output are in degrees, otherwise radians.
func GeodeticToRectifying(geodeticLat float64, ell *Ellipsoid, deg bool) float64 {
	phi, ell := sanitize(geodeticLat, ell, deg)
	return fromRadians(rectifyingLat(phi, ell.thirdFlattening), deg)
}

// RectifyingToGeodetic converts a rectifying latitude to a geodetic
// latitude. A nil ellipsoid selects WGS84. If deg is true the input
// and output are in degrees, otherwise radians.
func RectifyingToGeodetic(rectifyingLat float64, ell *Ellipsoid, deg bool) float64 {
	mu, ell := sanitize(rectifyingLat, ell, deg)
	return fromRadians(geodeticLatFromRectifying(mu, ell.thirdFlattening), deg)
}

// GeodeticToAuthalic converts a geodetic latitude to an authalic
// latitude. A nil ellipsoid selects WGS84. If deg is true the input
// and output are in degrees, otherwise radians.
func GeodeticToAuthalic(geodeticLat float64, ell *Ellipsoid, deg bool) float64 {
	phi, ell := sanitize(geodeticLat, ell, deg)
	return fromRadians(authalicLat(phi, ell.eccentricity), deg)
}

// AuthalicToGeodetic converts an authalic latitude to a geodetic
// latitude. A nil ellipsoid selects WGS84. If deg is true the input
// and output are in degrees, otherwise radians.
func AuthalicToGeodetic(authalicLat float64, ell *Ellipsoid, deg bool) float64 {
	xi, ell := sanitize(authalicLat, ell, deg)
	return fromRadians(geodeticLatFromAuthalic(xi, ell.eccentricity), deg)
}

// GeodeticToParametric converts a geodetic latitude to a parametric
// (reduced) latitude. A nil ellipsoid selects WGS84. If deg is true
// the input and output are in degrees, otherwise radians.
func GeodeticToParametric(geodeticLat float64, ell *Ellipsoid, deg bool) float64 {
	phi, ell := sanitize(geodeticLat, ell, deg)
	return fromRadians(parametricLat(phi, ell.eccentricity), deg)
}

// ParametricToGeodetic converts a parametric (reduced) latitude to a
// geodetic latitude. A nil ellipsoid selects WGS84. If deg is true the
// input and output are in degrees, otherwise radians.
func ParametricToGeodetic(parametricLat float64, ell *Ellipsoid, deg bool) float64 {
	beta, ell := sanitize(parametricLat, ell, deg)
	return fromRadians(geodeticLatFromParametric(beta, ell.eccentricity), deg)
}

func geocentricLat(phi, e float64) float64 {
	return math.Atan((1 - e*e) * math.Tan(phi))
}

func geodeticLatFromGeocentric(psi, e float64) float64 {
	return math.Atan(math.Tan(psi) / (1 - e*e))
}

func isometricLat(phi, e float64) float64 {
	switch {
	case math.Abs(phi-math.Pi/2) <= poleEpsilonRadians:
		return math.Inf(1)
	case math.Abs(-phi-math.Pi/2) <= poleEpsilonRadians:
		return math.Inf(-1)
	}
	return math.Asinh(math.Tan(phi)) - e*math.Atanh(e*math.Sin(phi))
}

func geodeticLatFromIsometric(psi, e float64) float64 {
	chi := 2*math.Atan(math.Exp(psi)) - math.Pi/2
	return geodeticLatFromConformal(chi, e)
}

func conformalLat(phi, e float64) float64 {
	sinPhi := math.Sin(phi)
	f1 := 1 - e*sinPhi
	f2 := 1 + e*sinPhi
	f3 := 1 - sinPhi
	f4 := 1 + sinPhi

	// At phi = +Pi/2 the ratio f4/f3 divides by zero; the conformal
	// latitude there is exactly +Pi/2.
	if f3 == 0 {
		return math.Pi / 2
	}
	return 2*math.Atan(math.Sqrt((f4/f3)*math.Pow(f1/f2, e))) - math.Pi/2
}

func geodeticLatFromConformal(chi, e float64) float64 {
	e2 := e * e
	e4 := e2 * e2
	e6 := e4 * e2
	e8 := e4 * e4

	f1 := e2/2 + 5*e4/24 + e6/12 + 13*e8/360
	f2 := 7*e4/48 + 29*e6/240 + 811*e8/11520
	f3 := 7*e6/120 + 81*e8/1120
	f4 := 4279 * e8 / 161280

	return chi +
		f1*math.Sin(2*chi) +
		f2*math.Sin(4*chi) +
		f3*math.Sin(6*chi) +
		f4*math.Sin(8*chi)
}

func rectifyingLat(phi, n float64) float64 {
	n2 := n * n
	n3 := n2 * n
	n4 := n2 * n2

	f1 := 3*n/2 - 9*n3/16
	f2 := 15*n2/16 - 15*n4/32
	f3 := 35 * n3 / 48
	f4 := 315 * n4 / 512

	return phi -
		f1*math.Sin(2*phi) +
		f2*math.Sin(4*phi) -
		f3*math.Sin(6*phi) +
		f4*math.Sin(8*phi)
}

func geodeticLatFromRectifying(mu, n float64) float64 {
	n2 := n * n
	n3 := n2 * n
	n4 := n2 * n2

	f1 := 3*n/2 - 27*n3/32
	f2 := 21*n2/16 - 55*n4/32
	f3 := 151 * n3 / 96
	f4 := 1097 * n4 / 512

	return mu +
		f1*math.Sin(2*mu) +
		f2*math.Sin(4*mu) +
		f3*math.Sin(6*mu) +
		f4*math.Sin(8*mu)
}

func authalicLat(phi, e float64) float64 {
	e2 := e * e
	e4 := e2 * e2
	e6 := e4 * e2

	f1 := e2/3 + 31*e4/180 + 59*e6/560
	f2 := 17*e4/360 + 61*e6/1260
	f3 := 383 * e6 / 45360

	return phi -
		f1*math.Sin(2*phi) +
		f2*math.Sin(4*phi) -
		f3*math.Sin(6*phi)
}

func geodeticLatFromAuthalic(xi, e float64) float64 {
	e2 := e * e
	e4 := e2 * e2
	e6 := e4 * e2

	f1 := e2/3 + 31*e4/180 + 517*e6/5040
	f2 := 23*e4/360 + 251*e6/3780
	f3 := 761 * e6 / 45360

	return xi +
		f1*math.Sin(2*xi) +
		f2*math.Sin(4*xi) +
		f3*math.Sin(6*xi)
}

func parametricLat(phi, e float64) float64 {
	return math.Atan(math.Sqrt(1-e*e) * math.Tan(phi))
}

func geodeticLatFromParametric(beta, e float64) float64 {
	return math.Atan(math.Tan(beta) / math.Sqrt(1-e*e))
}
