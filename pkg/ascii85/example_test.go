package ascii85_test

import (
	"fmt"

	"github.com/bokysan/btoa85/pkg/ascii85"
)

func ExampleEncode() {
	fmt.Println(ascii85.Encode([]byte("hello")))
	fmt.Println(ascii85.Encode([]byte{0, 0, 0, 0, 0}))
	// Output:
	// <~BOu!rDZ~>
	// <~z!!~>
}

func ExampleDecode() {
	decoded, err := ascii85.Decode("<~BOu!r\nDZ~>")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(string(decoded))

	_, err = ascii85.Decode("<~BOu!rDZ{~>")
	fmt.Println(err)
	// Output:
	// hello
	// ascii85: '{' at offset 7: invalid character: invalid input
}
