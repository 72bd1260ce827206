package bbviz_test

import (
	"fmt"

	"github.com/0x5844/bbviz"
)

func ExampleBoard_Toggle() {
	b := bbviz.NewBoard()
	b.SetOrientation(bbviz.OrientationB)
	b.Toggle(0, 0)
	fmt.Println(b.Hex())
	b.Toggle(7, 7)
	fmt.Println(b.Hex())
	// Output:
	// 0x1
	// 0x8000000000000001
}

func ExampleOrientation_BitIndex() {
	for _, o := range bbviz.Orientations() {
		fmt.Printf("%s %q top-left=%d\n", o.Letter(), o.String(), o.BitIndex(0, 0))
	}
	// Output:
	// A "rows: ↑, columns: →" top-left=56
	// B "rows: ↓, columns: →" top-left=0
	// C "rows: ↑, columns: ←" top-left=63
	// D "rows: ↓, columns: ←" top-left=7
}

func ExampleBoard_SetFromHex() {
	b := bbviz.NewBoard()
	b.Attach(bbviz.RendererFunc(func(v bbviz.View) {
		fmt.Println(v.Hex, v.Binary)
	}))
	b.SetFromHex("0x5")
	if err := b.SetFromHex("zz"); err != nil {
		fmt.Println("kept", b.Hex())
	}
	// Output:
	// 0x0 0b0
	// 0x5 0b101
	// 0x5 0b101
	// kept 0x5
}
