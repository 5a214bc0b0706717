// Package queue provides a string queue anchored by a sentinel on a circular
// doubly linked ring. Besides insertion and removal at both ends, the queue
// offers in-place transformations of the ring: deleting the middle element,
// removing adjacent duplicates, full and block-wise reversal, merge sort,
// merging two sorted queues and monotonic pruning.
//
// Inserted strings are copied into a fresh Element owned by the queue.
// RemoveHead and RemoveTail hand the Element over to the caller; every other
// operation that drops an Element releases it immediately.
//
// DeleteDup and Merge assume sorted input and do not check it. Unsorted input
// gives a well-formed but unspecified order.
//
// A Queue is not safe for concurrent use.
package queue
