package core

// Matrix2 is a row-major 2x2 matrix
type Matrix2 [2][2]float64

// Matrix3 is a row-major 3x3 matrix
type Matrix3 [3][3]float64

// Matrix4 is a row-major 4x4 matrix
type Matrix4 [4][4]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Determinant returns the determinant of a 2x2 matrix
func (m Matrix2) Determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Submatrix removes the given row and column
func (m Matrix3) Submatrix(row, col int) Matrix2 {
	var sub Matrix2
	r := 0
	for i := 0; i < 3; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < 3; j++ {
			if j == col {
				continue
			}
			sub[r][c] = m[i][j]
			c++
		}
		r++
	}
	return sub
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix3) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along row 0
func (m Matrix3) Determinant() float64 {
	det := 0.0
	for col := 0; col < 3; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse matrix. ok is false when the matrix is singular.
func (m Matrix3) Inverse() (inv Matrix3, ok bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}, false
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			// transposed on write
			inv[col][row] = m.Cofactor(row, col) / det
		}
	}
	return inv, true
}

// Multiply returns the matrix product m * other
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[r][k] * other[k][c]
			}
			result[r][c] = sum
		}
	}
	return result
}

// MultiplyTuple transforms a tuple by the matrix
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the transposed matrix
func (m Matrix4) Transpose() Matrix4 {
	var result Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r][c] = m[c][r]
		}
	}
	return result
}

// Submatrix removes the given row and column
func (m Matrix4) Submatrix(row, col int) Matrix3 {
	var sub Matrix3
	r := 0
	for i := 0; i < 4; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < 4; j++ {
			if j == col {
				continue
			}
			sub[r][c] = m[i][j]
			c++
		}
		r++
	}
	return sub
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the signed minor at (row, col)
func (m Matrix4) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant by cofactor expansion along row 0
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse matrix. ok is false when the determinant is
// zero; negative determinants (mirroring transforms) invert normally.
func (m Matrix4) Inverse() (inv Matrix4, ok bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix4{}, false
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			inv[col][row] = m.Cofactor(row, col) / det
		}
	}
	return inv, true
}

// ApproxEqual compares two matrices element-wise within Epsilon
func (m Matrix4) ApproxEqual(other Matrix4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !ApproxEqual(m[r][c], other[r][c]) {
				return false
			}
		}
	}
	return true
}
