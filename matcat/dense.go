package matcat

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// Identity creates the n×n identity matrix.
// Complexity: O(n²) time and memory.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1 // unit diagonal
	}

	return m, nil
}

// Rows returns the number of rows in the matrix. O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix. O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Fails with ErrOutOfRange on bad indices; never panics.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Fails with ErrOutOfRange on bad indices; never panics.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Mul returns the matrix product m·o.
// Stage 1 (Validate): nil operands and inner-dimension agreement.
// Stage 2 (Execute): triple loop over flat storage, k-innermost for cache
// friendliness on the row-major layout.
// Complexity: O(m.r * m.c * o.c) time, O(m.r * o.c) memory.
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	if m == nil || o == nil {
		return nil, ErrNilMatrix
	}
	if m.c != o.r {
		return nil, ErrDimensionMismatch
	}

	out := &Dense{r: m.r, c: o.c, data: make([]float64, m.r*o.c)}
	for i := 0; i < m.r; i++ {
		for k := 0; k < m.c; k++ {
			a := m.data[i*m.c+k]
			if a == 0 {
				continue // skip zero rows early; indicator matrices are sparse
			}
			for j := 0; j < o.c; j++ {
				out.data[i*o.c+j] += a * o.data[k*o.c+j]
			}
		}
	}

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Equal reports exact element-wise equality of shape and contents.
// Two nil matrices are equal; nil never equals non-nil.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[') // open row
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n") // close row
	}

	return b.String()
}
