package inventory

import (
	"math"
	"sort"
	"time"

	"c4inventario/internal/domain/models"
)

const lowStockThreshold = 10

// StatusCount is one histogram bucket: how many products sit in a status and
// what share of the total that is.
type StatusCount struct {
	Status     string
	Count      int
	Percentage float64
}

// RankedProduct pairs a product with its computed inventory value for the
// top-N ranking.
type RankedProduct struct {
	models.Product
	TotalValue float64
}

// Stats are the aggregate dashboard metrics, derived from already-loaded
// lists on every page render.
type Stats struct {
	TotalProducts  int
	TotalValue     float64
	LowStock       int
	TodayMovements int
	ByStatus       []StatusCount
	TopProducts    []RankedProduct
	RecentActivity []models.Movement
}

// ComputeStats derives the dashboard metrics from the product and movement
// lists. Pure and synchronous; empty inputs produce zero values.
func ComputeStats(products []models.Product, movements []models.Movement, now time.Time) Stats {
	stats := Stats{TotalProducts: len(products)}

	for _, p := range products {
		stats.TotalValue += p.Value()
		if p.Quantity < lowStockThreshold {
			stats.LowStock++
		}
	}

	year, month, day := now.Date()
	for _, m := range movements {
		my, mm, md := m.CreatedAt.In(now.Location()).Date()
		if my == year && mm == month && md == day {
			stats.TodayMovements++
		}
	}

	stats.ByStatus = statusHistogram(products)
	stats.TopProducts = TopProductsByValue(products, 5)
	stats.RecentActivity = RecentMovements(movements, 5)

	return stats
}

func statusHistogram(products []models.Product) []StatusCount {
	counts := map[string]int{}
	for _, p := range products {
		counts[p.Status]++
	}

	histogram := make([]StatusCount, 0, len(counts))
	for _, status := range models.ProductStatuses {
		count, ok := counts[status]
		if !ok {
			continue
		}
		histogram = append(histogram, StatusCount{
			Status:     status,
			Count:      count,
			Percentage: roundOneDecimal(float64(count) / float64(len(products)) * 100),
		})
		delete(counts, status)
	}

	// Statuses outside the known enum still get a bucket.
	leftover := make([]string, 0, len(counts))
	for status := range counts {
		leftover = append(leftover, status)
	}
	sort.Strings(leftover)
	for _, status := range leftover {
		histogram = append(histogram, StatusCount{
			Status:     status,
			Count:      counts[status],
			Percentage: roundOneDecimal(float64(counts[status]) / float64(len(products)) * 100),
		})
	}

	return histogram
}

// TopProductsByValue ranks products by price×quantity descending. The sort is
// stable, so equal values keep their original order.
func TopProductsByValue(products []models.Product, limit int) []RankedProduct {
	ranked := make([]RankedProduct, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, RankedProduct{Product: p, TotalValue: p.Value()})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalValue > ranked[j].TotalValue
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// RecentMovements returns the latest movements by timestamp descending,
// capped at limit when limit > 0.
func RecentMovements(movements []models.Movement, limit int) []models.Movement {
	recent := make([]models.Movement, len(movements))
	copy(recent, movements)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}
