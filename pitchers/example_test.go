package pitchers_test

import (
	"fmt"

	"github.com/katalvlaran/statespace/pitchers"
)

// ExampleMeasure measures 2 units with a 3-unit and a 4-unit jug.
func ExampleMeasure() {
	plan, err := pitchers.Measure(pitchers.Config{Capacities: []int{3, 4}, Target: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(plan.Status, plan.Len())
	for i, a := range plan.Actions {
		fmt.Printf("%-9v -> %v\n", a, plan.States[i+1])
	}
	// Output:
	// succeeded 4
	// Fill(0)   -> (3, 0)
	// Pour(0,1) -> (0, 3)
	// Fill(0)   -> (3, 3)
	// Pour(0,1) -> (2, 4)
}
