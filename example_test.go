package failtrace_test

import (
	"context"
	"fmt"

	"github.com/aretw0/failtrace"
)

func Example() {
	eng, err := failtrace.New("")
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	s := eng.Start(ctx, "incident-42")
	for _, target := range []string{"check-latency", "sol-db-scale"} {
		if s, err = eng.Advance(ctx, s, target); err != nil {
			panic(err)
		}
	}

	for _, n := range eng.History(s) {
		fmt.Printf("%s: %s\n", n.Kind, n.Prompt)
	}

	s = eng.Reset(ctx, s)
	fmt.Println(s.Path)

	// Output:
	// question: What is the primary symptom?
	// question: Database CPU status?
	// solution: Database Saturation
	// [start]
}
