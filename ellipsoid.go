package pymap3d

import (
	"errors"
	"fmt"
	"math"
)

// Ellipsoid describes a reference ellipsoid by its semi-major and
// semi-minor axes together with the derived shape parameters used by
// the latitude conversions. Ellipsoids are immutable once constructed.
type Ellipsoid struct {
	semimajorAxis   float64
	semiminorAxis   float64
	flattening      float64
	thirdFlattening float64
	eccentricity    float64
	name            string
}

// WGS84 is the default reference ellipsoid. Conversions that receive a
// nil ellipsoid use it.
var WGS84 *Ellipsoid

func init() {
	var err error
	WGS84, err = NewEllipsoidFromModel("wgs84")
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 ellipsoid: %s", err))
	}
}

// NewEllipsoid constructs an ellipsoid from its semi-major and
// semi-minor axes in meters.
func NewEllipsoid(semimajorAxis, semiminorAxis float64, name string) (*Ellipsoid, error) {
	if semimajorAxis <= 0.0 {
		return nil, errors.New("Semi-major axis must be greater than zero")
	}
	if semiminorAxis <= 0.0 {
		return nil, errors.New("Semi-minor axis must be greater than zero")
	}
	if semiminorAxis > semimajorAxis {
		return nil, errors.New("Semi-minor axis must not exceed the semi-major axis")
	}

	f := (semimajorAxis - semiminorAxis) / semimajorAxis
	return &Ellipsoid{
		semimajorAxis:   semimajorAxis,
		semiminorAxis:   semiminorAxis,
		flattening:      f,
		thirdFlattening: (semimajorAxis - semiminorAxis) / (semimajorAxis + semiminorAxis),
		eccentricity:    math.Sqrt(2*f - f*f),
		name:            name,
	}, nil
}

// NewEllipsoidFromModel constructs one of the named reference
// ellipsoids. Supported models are wgs84, grs80, clrk66, intl1924,
// airy and sphere.
func NewEllipsoidFromModel(model string) (*Ellipsoid, error) {
	switch model {
	case "wgs84":
		return NewEllipsoid(6378137.0, 6356752.31424518, "WGS-84 (1984)")
	case "grs80":
		return NewEllipsoid(6378137.0, 6356752.31414036, "GRS-80 (1980)")
	case "clrk66":
		return NewEllipsoid(6378206.4, 6356583.8, "Clarke (1866)")
	case "intl1924":
		return NewEllipsoid(6378388.0, 6356911.946, "International (1924)")
	case "airy":
		return NewEllipsoid(6377563.396, 6356256.909, "Airy (1830)")
	case "sphere":
		return NewEllipsoid(6371000.0, 6371000.0, "Sphere")
	}
	return nil, fmt.Errorf("unknown ellipsoid model %q", model)
}

// SemimajorAxis returns the equatorial radius in meters.
func (e *Ellipsoid) SemimajorAxis() float64 { return e.semimajorAxis }

// SemiminorAxis returns the polar radius in meters.
func (e *Ellipsoid) SemiminorAxis() float64 { return e.semiminorAxis }

// Flattening returns the flattening f = (a - b) / a.
func (e *Ellipsoid) Flattening() float64 { return e.flattening }

// ThirdFlattening returns the third flattening n = (a - b) / (a + b).
func (e *Ellipsoid) ThirdFlattening() float64 { return e.thirdFlattening }

// Eccentricity returns the first eccentricity.
func (e *Ellipsoid) Eccentricity() float64 { return e.eccentricity }

// Name returns the descriptive name of the ellipsoid.
func (e *Ellipsoid) Name() string { return e.name }
