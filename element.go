package datasheet

import "strings"

const (
	rectPrefix = "rect"
	pathPrefix = "path"
)

// CalibrationRect is an element whose identifier starts with "rect". Its first two segments are the horizontal
// and vertical reference edges of the plot area.
type CalibrationRect struct {
	ID   string
	Path *Path
}

// Curve is an element whose identifier starts with "path". Index is its position among all curves in document
// order, which is how path overrides refer to it.
type Curve struct {
	Index int
	ID    string
	Path  *Path
}

// Document holds the calibration rectangles and curves of a parsed SVG, both in document order.
type Document struct {
	Rects  []CalibrationRect
	Curves []Curve
}

// hasPrefix reports whether id starts with prefix, ignoring case.
func hasPrefix(id, prefix string) bool {
	return len(prefix) <= len(id) && strings.EqualFold(id[:len(prefix)], prefix)
}

// Classify sorts the elements into calibration rectangles and curves by the prefix of their identifier. Other
// elements are ignored.
func Classify(elems []Element) Document {
	doc := Document{}
	for _, elem := range elems {
		if elem.Path == nil {
			continue
		}
		if hasPrefix(elem.ID, rectPrefix) {
			doc.Rects = append(doc.Rects, CalibrationRect{
				ID:   elem.ID,
				Path: elem.Path,
			})
		} else if hasPrefix(elem.ID, pathPrefix) {
			doc.Curves = append(doc.Curves, Curve{
				Index: len(doc.Curves),
				ID:    elem.ID,
				Path:  elem.Path,
			})
		}
	}
	return doc
}
