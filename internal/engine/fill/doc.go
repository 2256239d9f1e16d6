// Package fill computes enclosed-region flood fills over a cell store.
//
// An enclosed region is a maximal set of inactive cells connected through
// 4-directional adjacency that cannot reach the grid boundary without
// crossing an active cell. Enclosed runs in two phases per region: classify
// the region by traversing it with an explicit work-list, then mark it only
// if the traversal never escaped the grid. The work-list keeps stack depth
// constant, so region size is bounded only by rows*cols.
//
// The result is a pure function of the input store, the bounds, and the
// paint record; it does not depend on map iteration order.
package fill
