package telemetry

import (
	"sync/atomic"
	"time"
)

// CompareMetrics fasst Messwerte zu Vergleichen und Merge-Läufen zusammen.
type CompareMetrics struct {
	comparisons   atomic.Uint64
	merges        atomic.Uint64
	merged        atomic.Uint64
	totalDuration atomic.Int64
}

var defaultCompareMetrics CompareMetrics

// DefaultCompareMetrics liefert die globalen Metriken.
func DefaultCompareMetrics() *CompareMetrics {
	return &defaultCompareMetrics
}

// Inc zählt einen Stringvergleich.
func (m *CompareMetrics) Inc() {
	m.comparisons.Add(1)
}

// Comparisons liefert die Anzahl der bisher gezählten Vergleiche.
func (m *CompareMetrics) Comparisons() uint64 {
	return m.comparisons.Load()
}

// TraceMerge startet die Messung eines k-Wege-Merges und liefert eine
// Abschlussfunktion, die Dauer und Anzahl der zusammengeführten Elemente meldet.
func TraceMerge() func(merged int) {
	start := time.Now()
	defaultCompareMetrics.merges.Add(1)
	return func(merged int) {
		elapsed := time.Since(start)
		defaultCompareMetrics.totalDuration.Add(elapsed.Nanoseconds())
		if merged > 0 {
			defaultCompareMetrics.merged.Add(uint64(merged))
		}
	}
}

// Snapshot gibt die gesammelten Werte zurück.
func (m *CompareMetrics) Snapshot() (comparisons uint64, merges uint64, merged uint64, average time.Duration) {
	comparisons = m.comparisons.Load()
	merges = m.merges.Load()
	merged = m.merged.Load()
	total := m.totalDuration.Load()
	if merges == 0 {
		return comparisons, merges, merged, 0
	}
	average = time.Duration(total / int64(merges))
	return comparisons, merges, merged, average
}

// Reset setzt alle Zähler zurück.
func (m *CompareMetrics) Reset() {
	m.comparisons.Store(0)
	m.merges.Store(0)
	m.merged.Store(0)
	m.totalDuration.Store(0)
}
