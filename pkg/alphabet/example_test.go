package alphabet_test

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/wordsearch/pkg/alphabet"
)

func ExampleNewTable() {
	tbl, _ := alphabet.NewTable("es", alphabet.Lower, []alphabet.Range{
		alphabet.Interval('a', 'z'),
		alphabet.SetOf('á', 'é', 'í', 'ó', 'ú', 'ñ', 'ü'),
	})
	fmt.Println(tbl.Counts)
	fmt.Printf("%.3f\n", tbl.Accumulated)
	// Output:
	// [26 7]
	// [0.788 1.000]
}

func ExampleCatalog_Resolve() {
	cat := alphabet.Builtin()
	tbl, err := cat.Resolve(context.Background(), "de", alphabet.Upper)
	if err != nil {
		fmt.Println(err)
		return
	}
	rng := rand.New(rand.NewPCG(1, 1^0xdeadbeef))
	letter, _ := tbl.Char(rng)
	fmt.Println(tbl.Total(), tbl.Contains([]rune(letter)[0]))
	// Output:
	// 30 true
}
