// Package docsections builds a hierarchical section tree, an interval index,
// and a word set over a text buffer, so the navigator can jump to structural
// addresses (an object key, an array index, a man-page heading) and render a
// breadcrumb trail for the cursor's current position.
package docsections
