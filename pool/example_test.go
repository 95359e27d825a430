package pool_test

import (
	"fmt"

	"github.com/fulldump/inceptionpool/pool"
)

func Example() {

	p := pool.New[int]()

	first, _ := p.AddBlock([]int{1, 2, 3})
	second, _ := p.AddBlock([]int{4, 5})

	p.AppendElement(first, 9)
	fmt.Println(p.View())

	p.ReplaceBlock(first, []int{7, 8})
	fmt.Println(p.View())

	p.RemoveBlock(first)
	l, _ := p.Location(second)
	fmt.Println(p.View(), l.Offset)

	// Output:
	// [1 2 3 9 4 5]
	// [7 8 4 5]
	// [4 5] 0
}
