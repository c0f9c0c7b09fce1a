package builder_test

import (
	"fmt"

	"github.com/katalvlaran/holomap/builder"
	"github.com/katalvlaran/holomap/domain"
	"github.com/katalvlaran/holomap/mesh"
)

func ExampleBuildDomainMesh() {
	square := mesh.Pointwise(func(z complex128) complex128 { return z * z })

	m, err := builder.BuildDomainMesh(domain.NewRadial(), 3, 4,
		builder.WithTransformations(square),
		builder.WithCache(true),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	pts := mesh.NewProjected(m).Points()
	fmt.Println(pts.Shape())
	// Output: [3 4 2]
}
