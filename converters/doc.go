// Package converters reads and writes graphs as HCL documents.
//
// A document names the graph (optional) and declares one vertex block per
// vertex, labelled by its integer id, in the order the graph should iterate:
//
//	name = "petersen"
//
//	vertex "1" {
//	  neighbors = [2, 4, 3]
//	}
//	vertex "2" {
//	  neighbors = [1, 5, 9]
//	}
//
// neighbors may be omitted or empty. Files ending in .json are parsed with
// the HCL JSON syntax instead. Decoding goes through core.FromEntries, so
// block order becomes the natural order and core.GraphOption values
// (dangling policy, loops) apply unchanged.
package converters
