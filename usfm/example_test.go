package usfm_test

import (
	"fmt"
	"log"

	bibleorgsys "github.com/alerque/BibleOrgSys"
	"github.com/alerque/BibleOrgSys/usfm"
)

func ExampleMarkerSet() {
	markers, err := usfm.New([]bibleorgsys.RawEntry{
		{
			"marker": "p", "nameEnglish": "Paragraph", "compulsory": "No",
			"level": "Newline", "numberable": "No", "nests": "No",
			"hasContent": "Sometimes", "printed": "Yes", "closed": "No",
			"occursIn": "Text",
		},
		{
			"marker": "nd", "nameEnglish": "Name of Deity", "compulsory": "No",
			"level": "Internal", "numberable": "No", "nests": "Yes",
			"hasContent": "Always", "printed": "Yes", "closed": "Always",
			"occursIn": "Text",
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	name, _ := markers.EnglishName("nd")
	fmt.Println(name)
	fmt.Println(markers.IsNewline("p"))
	fmt.Println(markers.MarkersOccurringIn("Text"))
	// Output:
	// Name of Deity
	// true
	// [p nd]
}
