package rrule

import "fmt"

func ExampleNewRuleFromText() {
	r, err := NewRuleFromText("DTSTART;CALENDAR=HIJRI-UM-AL-QURA:14460901\nRRULE:FREQ=YEARLY;BYMONTH=9;BYMONTHDAY=1;COUNT=3")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	dates, err := r.All(nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, d := range dates {
		fmt.Println(d.String())
	}
	// Output:
	// 1446-09-01
	// 1447-09-01
	// 1448-09-01
}
