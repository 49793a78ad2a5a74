// Command mpoolinfo reports how a candidate block size would be carved
// for a given element size: slots per block, bytes wasted at the tail,
// and the resulting utilization.
package main

import (
	"flag"
	"fmt"

	"github.com/canlin-zhang/mpool/mpool"
)

var options struct {
	blocksize int
	elemsize  int
}

func argParse() {
	flag.IntVar(&options.blocksize, "blocksize", 4096,
		"candidate block size, in bytes")
	flag.IntVar(&options.elemsize, "elemsize", 32,
		"size of the element type, in bytes")
	flag.Parse()
}

func main() {
	argParse()
	tellutilization()
}

func tellutilization() {
	slots, wasted, util := mpool.Layout(int64(options.blocksize), int64(options.elemsize))
	fmt.Printf("blocksize %v, elemsize %v\n", options.blocksize, options.elemsize)
	fmt.Printf("slots per block %v, wasted %v bytes, utilization %.2f%%\n", slots, wasted, util*100)
	if slots < 1 {
		fmt.Println("blocksize cannot hold even one slot of this size")
	}
}
