// Package config loads method configuration files.
//
// A file describes how one run colors a graph: which greedy strategy builds
// the start coloring and, for the local_search method, which engine improves
// it and with what tabu and time parameters:
//
//	method: local_search
//	initialization: dsatur
//	name: tabu_col
//	pseudo: tabucol
//	tabu_iter: {alpha: 0.6, random: {min: 0, max: 10}}
//	time: {relative: 0.1}
//
// Files are YAML; JSON files load unchanged. Unknown keys are rejected.
// The time block is optional; when present it holds exactly one of
// relative (seconds per vertex), fixed (seconds) or iterations (turns per
// inner loop). Without it the caller's limits apply.
package config
