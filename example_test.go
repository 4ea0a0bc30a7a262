package lumen_test

import (
	"context"
	"fmt"

	"github.com/shamspias/lumen"
)

func ExampleGreyscale() {
	grey, err := lumen.Greyscale([]byte{255, 0, 0, 255, 255, 255})
	if err != nil {
		panic(err)
	}
	fmt.Println(grey)
	// Output: [77 255]
}

func ExampleInvert() {
	out, err := lumen.Invert([]byte{255, 0, 0})
	if err != nil {
		panic(err)
	}
	fmt.Println(out)
	// Output: [0 255 255]
}

func ExampleGaussianKernel() {
	kernel, radius := lumen.GaussianKernel(1.0)
	fmt.Println(radius, len(kernel))
	// Output: 3 7
}

func ExampleLaplacian() {
	// A 3×1 image: black, white, black.
	edges, err := lumen.Laplacian([]byte{0, 0, 0, 255, 255, 255, 0, 0, 0}, 3, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(edges)
	// Output: [255 255 255]
}

func ExampleApplyFile() {
	opts := lumen.DefaultOptions()
	opts.BlurStrength = 25

	result, err := lumen.ApplyFile(context.Background(), "photo.png", "", lumen.FilterGaussian, opts)
	if err != nil {
		panic(err)
	}
	fmt.Println(result) // written to out-photo.png
}

func ExampleApplyBatch() {
	items := []lumen.BatchItem{
		{Src: "photo1.jpg"},
		{Src: "photo2.png", Dst: "edges.png"},
	}

	results := lumen.ApplyBatch(context.Background(), items, lumen.BatchOptions{
		Filter:  lumen.FilterLaplace,
		Options: lumen.DefaultOptions(),
		Workers: 4,
	})
	fmt.Println(lumen.Summarize(results))
}
