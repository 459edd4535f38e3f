// Package minheap provides IndexedMinHeap, a binary min-heap of
// (priority, identity) pairs over dense identities [0, capacity) with an
// identity→slot map for O(1) lookup and O(log n) decrease-key.
//
// Overview:
//
//   - Entries live in a 1-indexed array; slot 0 is unused, the minimum sits
//     in slot 1, the children of slot s are 2s and 2s+1.
//   - pos[id] holds the slot of id, or 0 once id is absent (never inserted
//     or already extracted).
//   - Every swap goes through one primitive that moves both array entries
//     and both map cells, so the array and the map cannot drift apart.
//
// Complexity:
//
//   - New:              O(capacity)
//   - Insert:           O(log n)
//   - Peek / Priority:  O(1)
//   - ExtractMin:       O(log n)
//   - DecreasePriority: O(log n)
//   - Validate:         O(n)
//
// Identities are never re-inserted during a traversal, only relaxed via
// DecreasePriority. That is what lets Prim and Dijkstra run in
// O(E log V) with a heap bounded by V.
//
// IndexedMinHeap is not safe for concurrent use; each traversal owns one.
package minheap
