package route_estimate

const (
	minutesPerStop = 30
	kmPerStop      = 5.0
)

// EstimateFactory даёт плоские оценки маршрута по числу остановок.
// Реального геокодирования у нас нет, и пока хватает констант.
type EstimateFactory struct{}

func New() *EstimateFactory {
	return &EstimateFactory{}
}

func (e *EstimateFactory) EstimateDurationMinutes(stops int) int {
	return stops * minutesPerStop
}

func (e *EstimateFactory) EstimateDistanceKm(stops int) float64 {
	return float64(stops) * kmPerStop
}
