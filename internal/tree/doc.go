// Package tree arranges projects into a forest and implements the moves a
// user can make on it: nesting a project under another one and reordering
// it among its siblings.
//
// Sibling order is the order of projects in the stored slice. A project
// whose parent id does not resolve, or whose parent chain loops, is a root.
package tree
