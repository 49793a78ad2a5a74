// Package mpool supplies a fixed-size object pool allocator for a single,
// statically chosen element type T.
//
//   - A Pool is single-writer: none of its methods are safe for concurrent
//     use on the same instance. Cross-thread cooperation is done by handing
//     a whole Pool, or the ExportRecord produced by ExportFree/ExportAll,
//     to another goroutine — never by calling into the same Pool from two
//     goroutines at once.
//   - Memory is acquired from a SystemAllocator in fixed-size blocks and
//     carved into slots sized and aligned for T. A block, once acquired,
//     is not returned to the SystemAllocator until the Pool that owns it
//     is closed (or the block's ownership is moved to another Pool via
//     TransferAll).
//   - A Pool does not run T's destructor on live slots when it is closed.
//     Callers that need that must destroy their payloads first, or use the
//     NewObject/DeleteObject helpers which pair allocation with construction.
package mpool

// TODO: block-level release back to the SystemAllocator before Close is
// not implemented; only arena-wide (pool-wide) release is supported, same
// limitation the teacher package carries for its arenas.
