package domain

// Tour - порядок посещения: перестановка индексов 0..n-1, начинается с 0
type Tour []int

// IsPermutation проверяет, что тур содержит каждый индекс 0..n-1 ровно один раз
func (t Tour) IsPermutation(n int) bool {
	if len(t) != n {
		return false
	}
	seen := make([]bool, n)
	for _, idx := range t {
		if idx < 0 || idx >= n || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}
