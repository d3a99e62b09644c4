// Package docs Route Sequencing Service API.
//
// Сервис построения маршрутов выездов монтажников p1Meter.
// Принимает список точек (первая - депо), получает матрицу времени и расстояний
// у провайдера маршрутизации и упорядочивает точки жадным алгоритмом ближайшего соседа.
//
// Основные возможности:
// - Построение маршрута с переездами и итогами
// - История построенных маршрутов и статистика
// - Прямое геокодирование адресов с кешированием
// - Асинхронная обработка через Redis Streams
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
