package TreeMap_test

import (
	"fmt"

	"github.com/g-m-twostay/go-containers/Maps/TreeMap"
)

func Example() {
	m := TreeMap.New[string, int]()
	for _, w := range []string{"pear", "fig", "apple", "fig"} {
		*m.Index(w)++
	}
	for k, v := range m.All() {
		fmt.Println(k, v)
	}
	it := m.Find("fig")
	it = m.EraseAt(it)
	fmt.Println(it.Key(), m.Size())
	// Output:
	// apple 1
	// fig 2
	// pear 1
	// pear 2
}

func ExampleTreeMap_Dump() {
	m := TreeMap.New[int, string]()
	m.Put(2, "b")
	m.Put(3, "c")
	fmt.Print(m.Dump())
	// Output:
	// TreeMap(2)
	// └── 2: b
	//     ├── ·
	//     └── 3: c
	//         ├── ·
	//         └── ·
}
