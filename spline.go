// seehuhn.de/go/acv - convert Photoshop curves files to colour cubes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package acv

// ResponseCurve is a tone curve sampled at every input level.
//
// Entry i gives the displacement of the output level from the input
// level i, i.e. the output level is i + r[i]. Storing displacements
// instead of output levels allows to combine curves by addition.
type ResponseCurve [256]float32

// NewResponseCurve interpolates the control points of c using a natural
// cubic spline and samples the result at all 256 input levels.
//
// Input levels to the left of the first control point map to output level
// 0, input levels to the right of the last control point map to output
// level 255. If the curve is not valid (see [Curve.Validate]), an error
// matching [ErrMalformedInput] is returned.
func NewResponseCurve(c Curve) (*ResponseCurve, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	kk := c.knots()
	sd := secondDerivatives(kk)

	r := &ResponseCurve{}
	first := int(kk[0].x)
	last := int(kk[len(kk)-1].x)
	for x := 0; x < first; x++ {
		r[x] = float32(0 - x)
	}
	sampleSpline(r, kk, sd)
	for x := last + 1; x < 256; x++ {
		r[x] = float32(255 - x)
	}
	return r, nil
}

// Output returns the output level for the given input level.
// The result is clamped to [0, 255].
func (r *ResponseCurve) Output(level int) float32 {
	return clamp(float32(level)+r[level], 0, 255)
}

// IsIdentity returns true if all displacements are zero.
func (r *ResponseCurve) IsIdentity() bool {
	for _, d := range r {
		if d != 0 {
			return false
		}
	}
	return true
}

// secondDerivatives returns the second derivatives of the natural cubic
// spline through the given knots.  At least two knots are required.
//
// The spline conditions give a tridiagonal system of equations, which is
// solved by forward elimination followed by back substitution.
func secondDerivatives(kk []knot) []float64 {
	n := len(kk)

	// row i of the system is
	//   sub[i]*s[i-1] + diag[i]*s[i] + sup[i]*s[i+1] = rhs[i]
	sub := make([]float64, n)
	diag := make([]float64, n)
	sup := make([]float64, n)
	rhs := make([]float64, n)

	// natural boundary conditions: s[0] = s[n-1] = 0
	diag[0] = 1
	diag[n-1] = 1

	for i := 1; i < n-1; i++ {
		p1, p2, p3 := kk[i-1], kk[i], kk[i+1]
		sub[i] = (p2.x - p1.x) / 6
		diag[i] = (p3.x - p1.x) / 3
		sup[i] = (p3.x - p2.x) / 6
		rhs[i] = (p3.y-p2.y)/(p3.x-p2.x) - (p2.y-p1.y)/(p2.x-p1.x)
	}

	// forward elimination
	for i := 1; i < n; i++ {
		k := sub[i] / diag[i-1]
		diag[i] -= k * sup[i-1]
		sub[i] = 0
		rhs[i] -= k * rhs[i-1]
	}

	// back substitution
	for i := n - 2; i >= 0; i-- {
		k := sup[i] / diag[i+1]
		diag[i] -= k * sub[i+1]
		sup[i] = 0
		rhs[i] -= k * rhs[i+1]
	}

	s := make([]float64, n)
	for i := range s {
		s[i] = rhs[i] / diag[i]
	}
	return s
}

// sampleSpline evaluates the spline through kk, with second derivatives sd,
// at every integer level from the first to the last knot, and stores the
// displacements in r.
func sampleSpline(r *ResponseCurve, kk []knot, sd []float64) {
	for i := 0; i < len(kk)-1; i++ {
		cur, next := kk[i], kk[i+1]
		h := next.x - cur.x
		for x := int(cur.x); x < int(next.x); x++ {
			t := (float64(x) - cur.x) / h
			a := 1 - t
			b := t
			y := a*cur.y + b*next.y +
				h*h/6*((a*a*a-a)*sd[i]+(b*b*b-b)*sd[i+1])
			y = clamp(y, 0, 255)
			r[x] = float32(y - float64(x))
		}
	}

	// the loop above stops just before the last knot
	last := kk[len(kk)-1]
	r[int(last.x)] = float32(last.y - last.x)
}
