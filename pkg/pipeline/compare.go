package pipeline

import (
	"context"
	"fmt"
	"math"

	"github.com/Muayad-Arafeh/Qscape/pkg/api"
)

// CompareOrder is the fixed presentation order for comparison rows. Results
// render in this order regardless of the order keys arrive in the response.
var CompareOrder = []string{"dijkstra", "dynamic_programming", "astar", "quantum", "genetic"}

// UnreachableGlyph marks an unbounded cost in a comparison row.
const UnreachableGlyph = "∞"

// ComparisonRow is one pre-formatted row of the comparison table. When Error
// is non-empty the metric columns are empty and the error cell spans them.
type ComparisonRow struct {
	Algorithm string `json:"algorithm"`
	Error     string `json:"error,omitempty"`
	Cost      string `json:"cost,omitempty"`
	TimeMS    string `json:"time_ms,omitempty"`
	Optimal   bool   `json:"optimal"`
	Mode      string `json:"mode,omitempty"`
	PathLen   int    `json:"path_len"`
}

// Reporter requests multi-algorithm comparisons and tabulates them
// deterministically.
type Reporter struct {
	backend Backend
}

// NewReporter creates a reporter over the given backend.
func NewReporter(backend Backend) *Reporter {
	return &Reporter{backend: backend}
}

// Compare issues one comparison request and returns rows in CompareOrder.
// Algorithms missing from the response are skipped; unknown keys in the
// response are ignored.
func (r *Reporter) Compare(ctx context.Context, req api.SolveRequest) ([]ComparisonRow, error) {
	resp, err := r.backend.Compare(ctx, req)
	if err != nil {
		return nil, err
	}
	rows := make([]ComparisonRow, 0, len(CompareOrder))
	for _, key := range CompareOrder {
		res, ok := resp.Algorithms[key]
		if !ok {
			continue
		}
		rows = append(rows, formatRow(key, res))
	}
	return rows, nil
}

func formatRow(key string, res api.AlgorithmResult) ComparisonRow {
	if res.Error != "" {
		return ComparisonRow{Algorithm: key, Error: res.Error}
	}
	row := ComparisonRow{
		Algorithm: key,
		TimeMS:    fmt.Sprintf("%.2f", res.ExecutionTimeMS),
		Optimal:   res.IsOptimal,
		Mode:      res.QuantumMode,
		PathLen:   len(res.Path),
	}
	if res.Cost == nil || math.IsInf(*res.Cost, 0) {
		row.Cost = UnreachableGlyph
	} else {
		row.Cost = fmt.Sprintf("%.2f", *res.Cost)
	}
	return row
}
