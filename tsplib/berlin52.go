package tsplib

import (
	"bytes"
	_ "embed"
)

// Berlin52Optimum is the length of the optimal berlin52 tour.
const Berlin52Optimum = 7542

//go:embed instances/berlin52.tsp
var berlin52 []byte

// Berlin52 returns a fresh copy of the embedded berlin52 instance.
// The embedded file is known-good, so a parse failure is a build defect and panics.
func Berlin52() *Instance {
	in, err := Parse(bytes.NewReader(berlin52))
	if err != nil {
		panic("tsplib: embedded berlin52: " + err.Error())
	}
	return in
}
