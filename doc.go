// Package dispagp solves the dispersive art gallery problem with vertex
// guards: choose polygon vertices whose visibility covers the whole polygon
// (holes allowed) so that the minimum pairwise geodesic distance between
// chosen guards is as large as possible.
//
// Distances are shortest paths in the vertex visibility graph weighted by the
// Manhattan distance of integer coordinates, so every objective value is an
// integer taken from a finite ladder of pairwise distances, or +∞ when a
// single guard sees everything.
//
// Layout:
//
//	geometry/    — exact predicates, rings, polygons with holes
//	polygon/     — validated instances, YAML/JSON I/O
//	builder/     — generated instances (rectangle, L, comb, frame, room chain)
//	core/        — thread-safe weighted undirected graph
//	bfs/         — traversal and connected components
//	dijkstra/    — single-source shortest paths
//	matrix/      — dense distance tables, Floyd–Warshall
//	coverage/    — visibility regions and the mutual-visibility oracle
//	witness/     — shadow witnesses (balanced overlay of visibility regions)
//	guardgraph/  — geodesic guard distances and the distance ladder
//	sat/         — incremental SAT backends (gini, gophersat)
//	optimizer/   — threshold search over the distance ladder
//	agp/         — the end-to-end solve driver
//	config/      — YAML configuration with validation
//	metrics/     — Prometheus collectors
//	logging/     — logrus construction helpers
//	cmd/dagp/    — command-line interface
//
// Quick start:
//
//	inst, _ := builder.Frame(6, 6, 2)
//	res, err := agp.Solve(ctx, inst, config.Default())
//	// res.Status == agp.StatusOptimal, res.Objective == 12
package dispagp
