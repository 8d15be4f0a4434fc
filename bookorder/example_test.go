package bookorder_test

import (
	"fmt"
	"log"
	"testing/fstest"

	"github.com/alerque/BibleOrgSys/bookorder"
)

func ExampleLoadDir() {
	fsys := fstest.MapFS{
		"BibleBookOrder_KJV.xml": {Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<BibleBookOrderSystem>
  <book id="1">GEN</book>
  <book id="2">EXO</book>
  <book id="40">MAT</book>
</BibleBookOrderSystem>
`)},
	}

	systems, err := bookorder.LoadDir(fsys, ".")
	if err != nil {
		log.Fatal(err)
	}

	kjv, _ := systems.System("KJV")
	book, _ := kjv.BookAt(40)
	fmt.Println(systems.Names())
	fmt.Println(book)
	// Output:
	// [KJV]
	// MAT
}
