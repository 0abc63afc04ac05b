// Package glsearch is a compact, deterministic Guided Local Search (GLS)
// solver for the symmetric Euclidean Travelling Salesman Problem.
//
// 🚀 What is glsearch?
//
//	A small library plus a demo command that bring together:
//		• Tours: permutation validation, copying, rotation-aware comparison
//		• Mutation: stochastic 2-opt (random segment reversal)
//		• Costs: raw Euclidean length and penalty-augmented cost
//		• Penalties: dense (gonum SymDense) or sparse edge-penalty tables
//		• Search: greedy local search nested in the GLS penalty loop
//		• Instances: TSPLIB EUC_2D and plain XY readers, embedded berlin52
//
// ✨ Why choose glsearch?
//
//   - Reproducible – every random draw comes from an injectable source
//   - No hidden state – each Search call owns its penalties
//   - Observable – OnAccept / OnIteration hooks instead of built-in logging
//   - Errors you can match – sentinel errors, compare with errors.Is
//
// Layout:
//
//	gls/          — the solver: types, 2-opt, costs, penalties, local search, Search
//	tsplib/       — instance readers and the embedded berlin52 benchmark
//	cmd/glsdemo/  — configurable command (viper + pflag) with zerolog output
//
// Quick example:
//
//	in := tsplib.Berlin52()
//	best, err := gls.Search(in.Cities, 150, 20, 0.3*7542/52, gls.WithSeed(1))
//
// returns the shortest tour seen over 150 penalty rounds.
//
//	go get github.com/katalvlaran/glsearch/gls
package glsearch
