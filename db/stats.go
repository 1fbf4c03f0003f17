/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

// Stats summarises the numeric entries of one biomarker.
type Stats struct {
	Count   int
	Unit    string
	Latest  *Entry
	Min     float64
	Max     float64
	Average float64
}

// Summarize computes stats over entries ordered newest first, as Query
// returns them. Only numeric entries recorded in the same unit as the most
// recent numeric entry are counted, since units are never converted.
func Summarize(entries []Entry) Stats {
	var stats Stats

	var sum float64

	for i := range entries {
		v, ok := entries[i].Value.AsNumber()
		if !ok {
			continue
		}

		unit := entries[i].UnitOrEmpty()

		if stats.Latest == nil {
			stats.Latest = &entries[i]
			stats.Unit = unit
			stats.Min = v
			stats.Max = v
		} else if unit != stats.Unit {
			continue
		}

		stats.Count++
		sum += v
		stats.Min = min(stats.Min, v)
		stats.Max = max(stats.Max, v)
	}

	if stats.Count > 0 {
		stats.Average = sum / float64(stats.Count)
	}

	return stats
}
