package service

// GeofenceRadiusDegrees задает полуширину bounding box вокруг точки.
// Это дешевый фильтр по координатной сетке, не геодезический радиус.
const GeofenceRadiusDegrees = 0.1

// ValidCoordinates reports whether (lat, lon) is a real-world coordinate.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// WithinBoundingBox reports whether the target lies inside the box of the
// given half-width centered at the observer. Каноническая формула гео-фильтра;
// выборки квестов и точек применяют тот же предикат в SQL
// (QuestRepository.ListAvailable, LocationRepository.ListNearby).
func WithinBoundingBox(observerLat, observerLon, targetLat, targetLon, radius float64) bool {
	return targetLat >= observerLat-radius && targetLat <= observerLat+radius &&
		targetLon >= observerLon-radius && targetLon <= observerLon+radius
}
