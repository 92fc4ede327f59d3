// Package imposition arranges the pages of several PDF documents onto
// rows x cols grids ("N-up") of a fixed paper size.
//
// The flattened page sequence (file order, then page order) decides placement:
// the i-th page lands on output page i/(rows*cols), filling cells left to
// right and top to bottom. Each page is scaled uniformly to fit its cell minus
// padding and centered in it. Coordinates use the PDF convention of a
// bottom-left origin.
//
// The engine talks to PDFs only through pdfdoc.Service.
package imposition
