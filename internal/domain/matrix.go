package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// UnreachableCost - условно бесконечная стоимость недостижимой пары.
// Используется только там, где построитель маршрута сравнивает длительности.
const UnreachableCost int64 = math.MaxInt64 / 4

// Cell - ячейка матрицы: либо достижимая пара с длительностью и расстоянием, либо недостижимая
type Cell struct {
	reachable       bool
	durationSeconds int64
	distanceMeters  int64
}

// Reachable создает достижимую ячейку. Отрицательные значения приводятся к нулю.
func Reachable(durationSeconds, distanceMeters int64) Cell {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	if distanceMeters < 0 {
		distanceMeters = 0
	}
	return Cell{
		reachable:       true,
		durationSeconds: durationSeconds,
		distanceMeters:  distanceMeters,
	}
}

// Unreachable создает ячейку для пары без маршрута
func Unreachable() Cell {
	return Cell{}
}

func (c Cell) IsReachable() bool      { return c.reachable }
func (c Cell) DurationSeconds() int64 { return c.durationSeconds }
func (c Cell) DistanceMeters() int64  { return c.distanceMeters }

// TravelMatrix - квадратная матрица времени и расстояния в пути.
// Индексы совпадают с порядком входных локаций, симметричность не гарантируется.
type TravelMatrix struct {
	n     int
	cells []Cell
}

// NewTravelMatrix создает матрицу n x n: диагональ нулевая, остальные ячейки недостижимы
func NewTravelMatrix(n int) *TravelMatrix {
	if n < 0 {
		panic(fmt.Sprintf("travel matrix: negative size %d", n))
	}
	m := &TravelMatrix{n: n, cells: make([]Cell, n*n)}
	for i := 0; i < n; i++ {
		m.cells[i*n+i] = Reachable(0, 0)
	}
	return m
}

// Size возвращает количество локаций
func (m *TravelMatrix) Size() int {
	return m.n
}

// Set записывает ячейку (i, j)
func (m *TravelMatrix) Set(i, j int, c Cell) {
	m.cells[m.index(i, j)] = c
}

// At возвращает ячейку (i, j)
func (m *TravelMatrix) At(i, j int) Cell {
	return m.cells[m.index(i, j)]
}

// DurationCost - длительность для сравнения; недостижимая пара превращается в UnreachableCost
func (m *TravelMatrix) DurationCost(i, j int) int64 {
	c := m.At(i, j)
	if !c.reachable {
		return UnreachableCost
	}
	return c.durationSeconds
}

// Validate проверяет, что матрица соответствует n локациям
func (m *TravelMatrix) Validate(n int) error {
	if m == nil {
		return fmt.Errorf("%w: matrix is nil, want %dx%d", ErrMatrixDimension, n, n)
	}
	if m.n != n || len(m.cells) != n*n {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrMatrixDimension, m.n, m.n, n, n)
	}
	return nil
}

func (m *TravelMatrix) index(i, j int) int {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("travel matrix: index (%d,%d) out of range for size %d", i, j, m.n))
	}
	return i*m.n + j
}

// matrixJSON - формат хранения матрицы в кеше, null означает недостижимую пару
type matrixJSON struct {
	Size      int        `json:"size"`
	Durations [][]*int64 `json:"durations"`
	Distances [][]*int64 `json:"distances"`
}

func (m *TravelMatrix) MarshalJSON() ([]byte, error) {
	out := matrixJSON{
		Size:      m.n,
		Durations: make([][]*int64, m.n),
		Distances: make([][]*int64, m.n),
	}
	for i := 0; i < m.n; i++ {
		out.Durations[i] = make([]*int64, m.n)
		out.Distances[i] = make([]*int64, m.n)
		for j := 0; j < m.n; j++ {
			c := m.At(i, j)
			if !c.reachable {
				continue
			}
			dur, dist := c.durationSeconds, c.distanceMeters
			out.Durations[i][j] = &dur
			out.Distances[i][j] = &dist
		}
	}
	return json.Marshal(out)
}

func (m *TravelMatrix) UnmarshalJSON(data []byte) error {
	var in matrixJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Size < 0 || len(in.Durations) != in.Size || len(in.Distances) != in.Size {
		return fmt.Errorf("%w: stored size %d", ErrMatrixDimension, in.Size)
	}

	restored := NewTravelMatrix(in.Size)
	for i := 0; i < in.Size; i++ {
		if len(in.Durations[i]) != in.Size || len(in.Distances[i]) != in.Size {
			return fmt.Errorf("%w: row %d", ErrMatrixDimension, i)
		}
		for j := 0; j < in.Size; j++ {
			dur, dist := in.Durations[i][j], in.Distances[i][j]
			if dur == nil || dist == nil {
				restored.Set(i, j, Unreachable())
				continue
			}
			restored.Set(i, j, Reachable(*dur, *dist))
		}
	}

	*m = *restored
	return nil
}

// MatrixFromRows собирает матрицу из строк ответа провайдера (секунды и метры).
// Пара достижима, только если есть и длительность, и расстояние.
func MatrixFromRows(n int, durations, distances [][]*float64) (*TravelMatrix, error) {
	if len(durations) != n || len(distances) != n {
		return nil, fmt.Errorf("%w: got %d duration rows and %d distance rows, want %d",
			ErrMatrixDimension, len(durations), len(distances), n)
	}

	m := NewTravelMatrix(n)
	for i := 0; i < n; i++ {
		if len(durations[i]) != n || len(distances[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d durations and %d distances, want %d",
				ErrMatrixDimension, i, len(durations[i]), len(distances[i]), n)
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dur, dist := durations[i][j], distances[i][j]
			if dur == nil || dist == nil {
				continue
			}
			m.Set(i, j, Reachable(int64(math.Round(*dur)), int64(math.Round(*dist))))
		}
	}
	return m, nil
}
