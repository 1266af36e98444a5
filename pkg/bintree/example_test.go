package bintree_test

import (
	"fmt"

	"github.com/matzehuels/treeshape/pkg/bintree"
)

func ExampleNormalize() {
	root := bintree.Example()
	res, _ := bintree.Normalize(root, bintree.ModeProper)

	fmt.Println("before:", res.Before)
	fmt.Println("after:", res.After)
	fmt.Println("proper:", bintree.IsProper(root))
	// Output:
	// before: 11
	// after: 15
	// proper: true
}

func ExampleDepthOf() {
	root := bintree.New("A")
	bintree.InsertLeft(root, "B")
	bintree.InsertLeft(root.Left, "C")

	fmt.Println(bintree.MaxDepth(root))
	fmt.Println(bintree.DepthOf(root, root.Left.Left))
	fmt.Println(bintree.DepthOf(root, bintree.New("C")))
	// Output:
	// 3
	// 2
	// -1
}

func ExampleEncode() {
	root := bintree.Encode(bintree.ExampleNary())

	fmt.Println(bintree.Equal(root, bintree.Example()))
	fmt.Println(root.Left.Value, root.Left.Right.Value)
	// Output:
	// true
	// B B'
}
