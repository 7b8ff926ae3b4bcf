package datasheet

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"
)

type num float64

func (f num) String() string {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return strconv.FormatFloat(float64(f), 'g', -1, 64)
	}
	s := fmt.Sprintf("%.*g", Precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

// WriteCSV writes all samples as comma separated values with the columns curve, index, t, x and y.
func WriteCSV(w io.Writer, res *Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"curve", "index", "t", "x", "y"}); err != nil {
		return err
	}
	for _, s := range res.curves {
		for i := range s.X {
			record := []string{
				s.ID,
				strconv.Itoa(i),
				num(s.T[i]).String(),
				num(s.X[i]).String(),
				num(s.Y[i]).String(),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonCurve struct {
	ID     string    `json:"id"`
	RectID string    `json:"rect"`
	T      []float64 `json:"t"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
}

// WriteJSON writes all curves as a JSON array of objects with the curve and rectangle identifiers and the t, x
// and y sequences.
func WriteJSON(w io.Writer, res *Result) error {
	curves := make([]jsonCurve, 0, len(res.curves))
	for _, s := range res.curves {
		curves = append(curves, jsonCurve{
			ID:     s.ID,
			RectID: s.RectID,
			T:      s.T,
			X:      s.X,
			Y:      s.Y,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(curves)
}
