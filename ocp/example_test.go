package ocp_test

import (
	"fmt"

	"github.com/sghaida/solid/ocp"
)

func ExampleTotalSessions() {
	total := ocp.TotalSessions(ocp.Standard{}, ocp.Pro{}, ocp.Premium{})
	fmt.Println(total)
	// Output: 32
}

func ExampleSessionsByKind() {
	n, err := ocp.SessionsByKind("pro")
	fmt.Println(n, err)

	_, err = ocp.SessionsByKind("student")
	fmt.Println(err)
	// Output:
	// 10 <nil>
	// ocp: unknown membership kind
}
