package datasheet

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

type pathParser struct {
	path []byte
	i    int
	err  error
}

func (z *pathParser) num() float64 {
	if z.err != nil {
		return 0.0
	}
	z.i += skipCommaWhitespace(z.path[z.i:])
	if len(z.path) <= z.i {
		z.err = fmt.Errorf("unexpected end of path data")
		return 0.0
	}
	f, n := strconv.ParseFloat(z.path[z.i:])
	if n == 0 {
		z.err = fmt.Errorf("bad number at position %d", z.i)
		return 0.0
	}
	z.i += n
	return f
}

// flag parses an arc flag, which may be written without a separator before the next number.
func (z *pathParser) flag() bool {
	if z.err != nil {
		return false
	}
	z.i += skipCommaWhitespace(z.path[z.i:])
	if z.i < len(z.path) && (z.path[z.i] == '0' || z.path[z.i] == '1') {
		z.i++
		return z.path[z.i-1] == '1'
	}
	z.err = fmt.Errorf("bad arc flag at position %d", z.i)
	return false
}

// ParseSVGPath parses the path data of an SVG path element, see https://www.w3.org/TR/SVG/paths.html#PathData.
func ParseSVGPath(s string) (*Path, error) {
	z := &pathParser{path: []byte(s)}
	p := &Path{}

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // control points
	for {
		z.i += skipCommaWhitespace(z.path[z.i:])
		if len(z.path) <= z.i {
			break
		}

		cmd := prevCmd
		if c := z.path[z.i]; 'A' <= c && c != 'e' && c != 'E' {
			cmd = c
			z.i++
		} else if prevCmd == 0 {
			return nil, fmt.Errorf("bad path: expected command at position %d", z.i)
		} else if prevCmd == 'Z' || prevCmd == 'z' {
			return nil, fmt.Errorf("bad path: expected command after close at position %d", z.i)
		}

		pos := p.Pos()
		x, y := pos.X, pos.Y
		switch cmd {
		case 'M', 'm':
			a, b := z.num(), z.num()
			if cmd == 'm' {
				a += x
				b += y
			}
			p.MoveTo(a, b)
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			a, b := z.num(), z.num()
			if cmd == 'l' {
				a += x
				b += y
			}
			p.LineTo(a, b)
		case 'H', 'h':
			a := z.num()
			if cmd == 'h' {
				a += x
			}
			p.LineTo(a, y)
		case 'V', 'v':
			b := z.num()
			if cmd == 'v' {
				b += y
			}
			p.LineTo(x, b)
		case 'C', 'c':
			a, b, c, d, e, f := z.num(), z.num(), z.num(), z.num(), z.num(), z.num()
			if cmd == 'c' {
				a += x
				b += y
				c += x
				d += y
				e += x
				f += y
			}
			p.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'S', 's':
			c, d, e, f := z.num(), z.num(), z.num(), z.num()
			if cmd == 's' {
				c += x
				d += y
				e += x
				f += y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			p.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'Q', 'q':
			a, b, c, d := z.num(), z.num(), z.num(), z.num()
			if cmd == 'q' {
				a += x
				b += y
				c += x
				d += y
			}
			p.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'T', 't':
			c, d := z.num(), z.num()
			if cmd == 't' {
				c += x
				d += y
			}
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			p.QuadTo(a, b, c, d)
			cpx, cpy = a, b
		case 'A', 'a':
			a, b, c := z.num(), z.num(), z.num()
			large, sweep := z.flag(), z.flag()
			f, g := z.num(), z.num()
			if cmd == 'a' {
				f += x
				g += y
			}
			p.ArcTo(a, b, c, large, sweep, f, g)
		default:
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, z.i-1)
		}
		if z.err != nil {
			return nil, fmt.Errorf("bad path: %w", z.err)
		}

		// coordinates following a moveto are implicit linetos
		if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
		prevCmd = cmd
	}
	return p, nil
}

// MustParseSVGPath parses an SVG path data string and panics on error.
func MustParseSVGPath(s string) *Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}
