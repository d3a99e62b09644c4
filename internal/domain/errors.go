package domain

import "errors"

var (
	// ErrProviderUnavailable - матрица не получена: сеть, ключ, квота или ответ не 2xx
	ErrProviderUnavailable = errors.New("distance provider unavailable")

	// ErrMatrixDimension - размер матрицы не совпадает с количеством локаций
	ErrMatrixDimension = errors.New("travel matrix dimension mismatch")
)
