package datasheet

import (
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/parse/v2/xml"
	"seehuhn.de/go/geom/matrix"
)

// Element is a geometric SVG element together with its attributes. The geometry has the transformations of
// the element and its ancestors applied.
type Element struct {
	ID    string
	Tag   string
	Path  *Path
	Attrs map[string]string
}

func (e Element) String() string {
	return fmt.Sprintf("<%s id=%q> %v", e.Tag, e.ID, e.Path)
}

// containers whose content is never rendered directly
var svgHiddenTags = map[string]bool{
	"defs":     true,
	"clipPath": true,
	"mask":     true,
	"marker":   true,
	"pattern":  true,
	"symbol":   true,
}

type svgParser struct {
	z   *parse.Input
	err error

	tags   []string
	ctms   []matrix.Matrix
	hidden int // number of open hidden containers
	root   bool

	elems []Element
}

func (svg *svgParser) ctm() matrix.Matrix {
	if len(svg.ctms) == 0 {
		return matrix.Identity
	}
	return svg.ctms[len(svg.ctms)-1]
}

func (svg *svgParser) setErr(format string, args ...interface{}) {
	if svg.err == nil {
		svg.err = parse.NewErrorLexer(svg.z, format, args...)
	}
}

// parseDimension parses a length and drops its unit, since calibration makes the absolute scale irrelevant.
func (svg *svgParser) parseDimension(v string) float64 {
	v = strings.TrimSpace(v)
	if len(v) == 0 {
		return 0.0
	}
	num, n := strconv.ParseFloat([]byte(v))
	if n == 0 {
		svg.setErr("bad dimension: %s", v)
		return 0.0
	}
	return num
}

func (svg *svgParser) parsePoints(v string) []float64 {
	b := []byte(v)
	vals := []float64{}
	i := skipCommaWhitespace(b)
	for i < len(b) {
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			svg.setErr("bad number: %s", v)
			return vals
		}
		vals = append(vals, f)
		i += n
		i += skipCommaWhitespace(b[i:])
	}
	return vals
}

func (svg *svgParser) parseTransform(v string) matrix.Matrix {
	i, j := 0, 0
	m := matrix.Identity
	var fun string
	for i < len(v) {
		if v[i] == '(' {
			fun = strings.ToLower(strings.Trim(v[j:i], " \t\r\n,"))
			j = i + 1
		} else if v[i] == ')' {
			d := svg.parsePoints(v[j:i])
			var f matrix.Matrix
			switch fun {
			case "matrix":
				if len(d) != 6 {
					svg.setErr("bad transform matrix")
					return m
				}
				f = matrix.Matrix{d[0], d[1], d[2], d[3], d[4], d[5]}
			case "translate":
				if len(d) == 1 {
					f = matrix.Translate(d[0], 0.0)
				} else if len(d) == 2 {
					f = matrix.Translate(d[0], d[1])
				} else {
					svg.setErr("bad transform translate")
					return m
				}
			case "scale":
				if len(d) == 1 {
					f = matrix.Matrix{d[0], 0.0, 0.0, d[0], 0.0, 0.0}
				} else if len(d) == 2 {
					f = matrix.Matrix{d[0], 0.0, 0.0, d[1], 0.0, 0.0}
				} else {
					svg.setErr("bad transform scale")
					return m
				}
			case "rotate":
				if len(d) != 1 && len(d) != 3 {
					svg.setErr("bad transform rotate")
					return m
				}
				sin, cos := math.Sincos(d[0] * math.Pi / 180.0)
				f = matrix.Matrix{cos, sin, -sin, cos, 0.0, 0.0}
				if len(d) == 3 {
					f = matrix.Translate(-d[1], -d[2]).Mul(f).Mul(matrix.Translate(d[1], d[2]))
				}
			case "skewx":
				if len(d) != 1 {
					svg.setErr("bad transform skewX")
					return m
				}
				f = matrix.Matrix{1.0, 0.0, math.Tan(d[0] * math.Pi / 180.0), 1.0, 0.0, 0.0}
			case "skewy":
				if len(d) != 1 {
					svg.setErr("bad transform skewY")
					return m
				}
				f = matrix.Matrix{1.0, math.Tan(d[0] * math.Pi / 180.0), 0.0, 1.0, 0.0, 0.0}
			default:
				svg.setErr("bad transform: %s", fun)
				return m
			}
			// the rightmost transformation is applied first
			m = f.Mul(m)
			j = i + 1
		}
		i++
	}
	return m
}

func (svg *svgParser) shape(tag string, attrs map[string]string) *Path {
	p := &Path{}
	switch tag {
	case "path":
		var err error
		if p, err = ParseSVGPath(attrs["d"]); err != nil {
			svg.setErr("%v", err)
			return nil
		}
	case "rect":
		x := svg.parseDimension(attrs["x"])
		y := svg.parseDimension(attrs["y"])
		w := svg.parseDimension(attrs["width"])
		h := svg.parseDimension(attrs["height"])
		// the horizontal edge comes first and the vertical edge second, rounded corners are ignored
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.Close()
	case "line":
		p.MoveTo(svg.parseDimension(attrs["x1"]), svg.parseDimension(attrs["y1"]))
		p.LineTo(svg.parseDimension(attrs["x2"]), svg.parseDimension(attrs["y2"]))
	case "polyline", "polygon":
		points := svg.parsePoints(attrs["points"])
		for i := 0; i+1 < len(points); i += 2 {
			if i == 0 {
				p.MoveTo(points[0], points[1])
			} else {
				p.LineTo(points[i], points[i+1])
			}
		}
		if tag == "polygon" && 2 <= len(points) {
			p.Close()
		}
	case "circle", "ellipse":
		cx := svg.parseDimension(attrs["cx"])
		cy := svg.parseDimension(attrs["cy"])
		var rx, ry float64
		if tag == "circle" {
			rx = svg.parseDimension(attrs["r"])
			ry = rx
		} else {
			rx = svg.parseDimension(attrs["rx"])
			ry = svg.parseDimension(attrs["ry"])
		}
		p.MoveTo(cx-rx, cy)
		p.ArcTo(rx, ry, 0.0, true, false, cx+rx, cy)
		p.ArcTo(rx, ry, 0.0, true, false, cx-rx, cy)
	default:
		return nil
	}

	p, err := p.Transform(svg.ctm())
	if err != nil {
		svg.setErr("bad %s: %v", tag, err)
		return nil
	}
	return p
}

func (svg *svgParser) push(tag string, ctm matrix.Matrix) {
	svg.tags = append(svg.tags, tag)
	svg.ctms = append(svg.ctms, ctm)
	if svgHiddenTags[tag] {
		svg.hidden++
	}
}

func (svg *svgParser) pop() {
	if len(svg.tags) == 0 {
		return
	}
	tag := svg.tags[len(svg.tags)-1]
	if svgHiddenTags[tag] {
		svg.hidden--
	}
	svg.tags = svg.tags[:len(svg.tags)-1]
	svg.ctms = svg.ctms[:len(svg.ctms)-1]
}

func localName(name string) string {
	if i := strings.IndexByte(name, ':'); i != -1 {
		return name[i+1:]
	}
	return name
}

// ParseSVG parses an SVG document and returns its geometric elements (path, rect, line, polyline, polygon,
// circle and ellipse) in document order. Elements inside definitions such as defs or clipPath are skipped.
func ParseSVG(r io.Reader) ([]Element, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	svg := svgParser{
		z: z,
	}
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return svg.elems, l.Err()
			} else if svg.err != nil {
				return svg.elems, svg.err
			} else if !svg.root {
				return nil, fmt.Errorf("expected SVG tag")
			}
			return svg.elems, nil
		case xml.StartTagToken:
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
					val = val[1 : len(val)-1]
				}
				attrs[localName(string(l.Text()))] = html.UnescapeString(string(val))
			}

			tag := localName(string(data[1:]))
			if len(svg.tags) == 0 {
				if tag != "svg" || svg.root {
					return nil, fmt.Errorf("expected SVG tag")
				}
				svg.root = true
			}

			ctm := svg.ctm()
			if transform, ok := attrs["transform"]; ok {
				ctm = svg.parseTransform(transform).Mul(ctm)
			}
			svg.push(tag, ctm)

			if svg.hidden == 0 {
				if p := svg.shape(tag, attrs); p != nil {
					svg.elems = append(svg.elems, Element{
						ID:    attrs["id"],
						Tag:   tag,
						Path:  p,
						Attrs: attrs,
					})
				}
			}
			if svg.err != nil {
				return svg.elems, svg.err
			}

			if tt == xml.StartTagCloseVoidToken {
				svg.pop()
			}
		case xml.EndTagToken:
			svg.pop()
		}
	}
}

// ParseSVGFile opens and parses an SVG file, see ParseSVG.
func ParseSVGFile(filename string) ([]Element, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseSVG(f)
}
