package pymap3d_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/peterbbryan/pymap3d"
)

type conversion func(float64, *pymap3d.Ellipsoid, bool) float64

type pair struct {
	name    string
	forward conversion
	inverse conversion
}

var pairs = []pair{
	{"geocentric", pymap3d.GeodeticToGeocentric, pymap3d.GeocentricToGeodetic},
	{"isometric", pymap3d.GeodeticToIsometric, pymap3d.IsometricToGeodetic},
	{"conformal", pymap3d.GeodeticToConformal, pymap3d.ConformalToGeodetic},
	{"rectifying", pymap3d.GeodeticToRectifying, pymap3d.RectifyingToGeodetic},
	{"authalic", pymap3d.GeodeticToAuthalic, pymap3d.AuthalicToGeodetic},
	{"parametric", pymap3d.GeodeticToParametric, pymap3d.ParametricToGeodetic},
}

func TestGeocentricKnownValue(t *testing.T) {
	got := pymap3d.GeodeticToGeocentric(45.0, nil, true)
	if !scalar.EqualWithinAbs(got, 44.80757678, 1e-6) {
		t.Fatalf("expected 44.80757678, got %.8f", got)
	}
}

func TestIsometricPoles(t *testing.T) {
	if got := pymap3d.GeodeticToIsometric(90.0, nil, true); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf at 90 degrees, got %f", got)
	}
	if got := pymap3d.GeodeticToIsometric(-90.0, nil, true); !math.IsInf(got, -1) {
		t.Fatalf("expected -Inf at -90 degrees, got %f", got)
	}
	if got := pymap3d.GeodeticToIsometric(math.Pi/2, nil, false); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf at Pi/2 radians, got %f", got)
	}
	if got := pymap3d.GeodeticToIsometric(0.0, nil, true); got != 0 {
		t.Fatalf("expected 0 at the equator, got %f", got)
	}
}

func TestIsometricKnownValue(t *testing.T) {
	got := pymap3d.GeodeticToIsometric(45.0, nil, true)
	if !scalar.EqualWithinAbs(got, 50.227466, 1e-3) {
		t.Fatalf("expected 50.227466, got %.6f", got)
	}
}

func TestConformalAtPole(t *testing.T) {
	got := pymap3d.GeodeticToConformal(90.0, nil, true)
	if !scalar.EqualWithinAbs(got, 90.0, 1e-6) {
		t.Fatalf("expected 90, got %.9f", got)
	}
}

func TestConformalRoundTripAt30(t *testing.T) {
	got := pymap3d.ConformalToGeodetic(pymap3d.GeodeticToConformal(30.0, nil, true), nil, true)
	if !scalar.EqualWithinAbs(got, 30.0, 1e-6) {
		t.Fatalf("expected 30, got %.9f", got)
	}
}

func TestAuthalicKnownValue(t *testing.T) {
	got := pymap3d.GeodeticToAuthalic(45.0, nil, true)
	if !scalar.EqualWithinAbs(got, 44.871700, 1e-4) {
		t.Fatalf("expected 44.871700, got %.6f", got)
	}
}

func TestRectifyingKnownValue(t *testing.T) {
	got := pymap3d.GeodeticToRectifying(45.0, nil, true)
	if !scalar.EqualWithinAbs(got, 44.855682, 1e-3) {
		t.Fatalf("expected 44.855682, got %.6f", got)
	}
}

func TestParametricKnownValues(t *testing.T) {
	got := pymap3d.GeodeticToParametric(45.0, nil, true)
	if !scalar.EqualWithinAbs(got, 44.903788, 2e-4) {
		t.Fatalf("expected 44.903788, got %.6f", got)
	}
	got = pymap3d.GeodeticToParametric(60.0, nil, true)
	if !scalar.EqualWithinAbs(got, 59.916606, 2e-4) {
		t.Fatalf("expected 59.916606, got %.6f", got)
	}
}

func TestRoundTrips(t *testing.T) {
	sphere, err := pymap3d.NewEllipsoidFromModel("sphere")
	if err != nil {
		t.Fatalf("error constructing sphere: %s", err)
	}
	// e is approximately 0.15, well beyond any terrestrial ellipsoid.
	// The truncated series are O(e^8), so the tolerance is looser.
	eccentric, err := pymap3d.NewEllipsoid(6378137.0, 6306393.0, "eccentric test")
	if err != nil {
		t.Fatalf("error constructing eccentric ellipsoid: %s", err)
	}

	cases := []struct {
		name    string
		ell     *pymap3d.Ellipsoid
		epsilon float64
	}{
		{"wgs84", nil, 1e-6},
		{"sphere", sphere, 1e-6},
		{"eccentric", eccentric, 1e-4},
	}

	const latInc = 0.5
	for _, c := range cases {
		for _, p := range pairs {
			for lat := -89.0; lat <= 89.0; lat += latInc {
				got := p.inverse(p.forward(lat, c.ell, true), c.ell, true)
				if !scalar.EqualWithinAbs(got, lat, c.epsilon) {
					t.Fatalf("%s/%s: round trip of %f got %.9f", c.name, p.name, lat, got)
				}
			}
		}
	}
}

func TestZeroIdentity(t *testing.T) {
	for _, p := range pairs {
		for _, deg := range []bool{true, false} {
			if got := p.forward(0, nil, deg); got != 0 {
				t.Fatalf("%s forward: expected exactly 0, got %g", p.name, got)
			}
			if got := p.inverse(0, nil, deg); got != 0 {
				t.Fatalf("%s inverse: expected exactly 0, got %g", p.name, got)
			}
		}
	}
}

func TestOddSymmetry(t *testing.T) {
	lats := []float64{10, 30, 45, 60, 80, 89}
	for _, p := range pairs {
		for _, lat := range lats {
			pos := p.forward(lat, nil, true)
			neg := p.forward(-lat, nil, true)
			if !scalar.EqualWithinAbs(neg, -pos, 1e-9) {
				t.Fatalf("%s: expected f(-%f) == -f(%f), got %.12f and %.12f", p.name, lat, lat, neg, pos)
			}
		}
	}
	// Oddness holds at the isometric poles too, where the bounds are
	// +/- Inf.
	if got := pymap3d.GeodeticToIsometric(-90, nil, true); !math.IsInf(got, -1) {
		t.Fatalf("expected -Inf, got %f", got)
	}
}

func TestDegreesRadiansConsistency(t *testing.T) {
	lats := []float64{-75, -30.5, 0, 10, 45, 88}
	for _, p := range pairs {
		for _, lat := range lats {
			degrees := p.forward(lat, nil, true)
			radians := p.forward(lat*math.Pi/180, nil, false) * 180 / math.Pi
			if !scalar.EqualWithinAbs(degrees, radians, 1e-9) {
				t.Fatalf("%s at %f: degrees path got %.12f, radians path got %.12f", p.name, lat, degrees, radians)
			}
		}
	}
}

// On an oblate ellipsoid the auxiliary latitudes order as
// geocentric <= parametric <= geodetic for latitudes in (0, 90).
func TestGeocentricParametricGeodeticOrdering(t *testing.T) {
	for lat := 1.0; lat < 90.0; lat++ {
		geocentric := pymap3d.GeodeticToGeocentric(lat, nil, true)
		parametric := pymap3d.GeodeticToParametric(lat, nil, true)
		if geocentric > parametric {
			t.Fatalf("at %f: geocentric %.9f exceeds parametric %.9f", lat, geocentric, parametric)
		}
		if parametric > lat {
			t.Fatalf("at %f: parametric %.9f exceeds geodetic", lat, parametric)
		}
	}
}

func TestIsometricInverseOfPole(t *testing.T) {
	got := pymap3d.IsometricToGeodetic(math.Inf(1), nil, true)
	if !scalar.EqualWithinAbs(got, 90.0, 1e-9) {
		t.Fatalf("expected 90, got %.9f", got)
	}
	got = pymap3d.IsometricToGeodetic(math.Inf(-1), nil, true)
	if !scalar.EqualWithinAbs(got, -90.0, 1e-9) {
		t.Fatalf("expected -90, got %.9f", got)
	}
}

func TestExplicitEllipsoidMatchesDefault(t *testing.T) {
	wgs84, err := pymap3d.NewEllipsoidFromModel("wgs84")
	if err != nil {
		t.Fatalf("error constructing wgs84: %s", err)
	}
	for _, p := range pairs {
		got := p.forward(37.5, wgs84, true)
		want := p.forward(37.5, nil, true)
		if got != want {
			t.Fatalf("%s: explicit WGS84 got %.12f, default got %.12f", p.name, got, want)
		}
	}
}
