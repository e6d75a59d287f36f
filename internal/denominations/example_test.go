package denominations_test

import (
	"fmt"

	"github.com/sbilibin2017/gw-atm-kiosk/internal/denominations"
)

func ExampleSuggest() {
	sel, err := denominations.Suggest(280)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sel)
	// Output: map[2:0 5:0 10:3 50:1 100:2 1000:0]
}

func ExampleValidate() {
	res, err := denominations.Validate(1000, denominations.Selection{100: 5})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Valid())
	fmt.Println(res.Message())
	// Output:
	// false
	// Total must be exactly $1000. Current total: $500.
}
