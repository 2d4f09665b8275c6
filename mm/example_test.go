// SPDX-License-Identifier: MIT
package mm_test

import (
	"fmt"

	"github.com/katalvlaran/mmq/criterion"
	"github.com/katalvlaran/mmq/mm"
	"github.com/katalvlaran/mmq/ndarray"
	"github.com/katalvlaran/mmq/potential"
)

// ExampleMMCG denoises a short signal with a quadratic data term.
func ExampleMMCG() {
	observed := ndarray.Vector([]float64{1, 2, 3})
	data, err := criterion.NewQuad(criterion.Identity{}, criterion.WithMean(observed))
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := mm.MMCG([]criterion.Term{data}, ndarray.New(3))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%v %.3f\n", res.Converged, res.X.Data)
	// Output: true [1.000 2.000 3.000]
}

// ExampleMMMG keeps a solution non-negative with a soft VminProj penalty.
func ExampleMMMG() {
	observed := ndarray.Vector([]float64{-1, 0.5, 2})
	data, _ := criterion.NewQuad(criterion.Identity{}, criterion.WithMean(observed))
	box, _ := criterion.New(criterion.Identity{}, potential.NewVminProj(0), criterion.WithHyper(9))

	res, err := mm.MMMG([]criterion.Term{data, box}, ndarray.New(3), mm.WithTolerance(1e-6))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%v %.3f\n", res.Converged, res.X.Data)
	// Output: true [-0.100 0.500 2.000]
}
