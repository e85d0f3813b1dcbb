// Package minheap provides a generic binary min-heap used as the priority
// queue behind graph traversals.
//
// What:
//
//   - Heap[T] keeps a dense, 0-indexed slice in binary-heap order:
//     parent(i) = (i-1)/2, left(i) = 2i+1, right(i) = 2i+2.
//   - Ordering is supplied as a strict less function, so any element type
//     works; NewOrdered/FromOrdered cover the built-in ordered types.
//   - From adopts a sorted copy of its input, since a sorted slice already
//     satisfies the heap invariant.
//
// Complexity:
//
//   - Push, Pop: O(log n). Peek, Len: O(1).
//   - From:      O(n log n) (one sort).
//
// Pop and Peek on an empty heap return the zero value and false; the heap
// has no error conditions. Equal elements come out in no particular order.
//
// A Heap is not safe for concurrent use.
package minheap
