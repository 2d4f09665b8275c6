// SPDX-License-Identifier: MIT
package potential_test

import (
	"fmt"

	"github.com/katalvlaran/mmq/potential"
)

// ExampleGRCoeffs shows the majorant curvature of an edge-preserving
// potential: constant inside the quadratic zone, decaying like 1/|u| in
// the linear tails, and the analytic limit at u = 0.
func ExampleGRCoeffs() {
	p := potential.NewHuber(1)
	b := potential.GRCoeffs(p, nil, []float64{0, 0.5, 2, -4})
	fmt.Println(p.Name(), p.Convex(), b)
	// Output:
	// Huber true [2 2 1 0.5]
}
