// Package routing строит порядок объезда точек и сводку по переездам.
//
// Построение тура - жадный алгоритм ближайшего соседа по длительности в пути:
// старт всегда с индекса 0 (депо), на каждом шаге выбирается непосещенная точка
// с минимальной длительностью от текущей, при равенстве - с меньшим индексом.
// Алгоритм детерминирован, работает за O(n²) и не гарантирует оптимальность.
//
// Функции пакета чистые: без ввода-вывода, блокировок и общего состояния.
package routing
