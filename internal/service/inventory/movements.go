package inventory

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"c4inventario/internal/domain/models"
)

// Movement date windows offered by the reports screen.
const (
	WindowAll   = "all"
	WindowToday = "today"
	WindowWeek  = "week"
	WindowMonth = "month"
)

// SynthesizeMovements derives a minimal movement history from product audit
// fields: an Entry per created product, plus an Adjustment per product that
// was updated after creation. Presentation fallback for backends without a
// movement log, not authoritative data. Result is sorted by timestamp
// descending.
func SynthesizeMovements(products []models.Product) []models.Movement {
	movements := make([]models.Movement, 0, len(products))

	for _, p := range products {
		location := p.Location
		if location == "" {
			location = "Unspecified"
		}
		quantity := p.Quantity
		if quantity == 0 {
			quantity = 1
		}

		if p.CreatedBy != "" {
			movements = append(movements, models.Movement{
				ID:          fmt.Sprintf("%d-created", p.ID),
				ProductID:   p.ProductID,
				ProductName: p.Name,
				Type:        models.MovementEntry,
				ToStatus:    p.Status,
				Quantity:    quantity,
				Location:    location,
				PerformedBy: p.CreatedBy,
				CreatedAt:   p.CreatedAt,
				Notes:       "Product created",
			})
		}

		if p.UpdatedBy != "" && !p.UpdatedAt.Equal(p.CreatedAt) {
			movements = append(movements, models.Movement{
				ID:          fmt.Sprintf("%d-updated", p.ID),
				ProductID:   p.ProductID,
				ProductName: p.Name,
				Type:        models.MovementAdjustment,
				FromStatus:  p.Status,
				ToStatus:    p.Status,
				Quantity:    quantity,
				Location:    location,
				PerformedBy: p.UpdatedBy,
				CreatedAt:   p.UpdatedAt,
				Notes:       "Product updated",
			})
		}
	}

	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].CreatedAt.After(movements[j].CreatedAt)
	})

	return movements
}

// MovementQuery captures the reports screen's filter controls.
type MovementQuery struct {
	Window string
	Type   string
	User   string
	Search string
}

// FilterMovements applies the date window, exact type/user selectors and the
// case-insensitive search, AND-composed. The input slice is not modified.
func FilterMovements(movements []models.Movement, query MovementQuery, now time.Time) []models.Movement {
	var cutoff time.Time
	switch query.Window {
	case WindowWeek:
		cutoff = now.Add(-7 * 24 * time.Hour)
	case WindowMonth:
		cutoff = now.Add(-30 * 24 * time.Hour)
	}

	term := strings.ToLower(strings.TrimSpace(query.Search))
	year, month, day := now.Date()

	filtered := make([]models.Movement, 0, len(movements))
	for _, m := range movements {
		if query.Window == WindowToday {
			my, mm, md := m.CreatedAt.In(now.Location()).Date()
			if my != year || mm != month || md != day {
				continue
			}
		} else if !cutoff.IsZero() && m.CreatedAt.Before(cutoff) {
			continue
		}

		if query.Type != "" && query.Type != FilterAll && m.Type != query.Type {
			continue
		}
		if query.User != "" && query.User != FilterAll && m.PerformedBy != query.User {
			continue
		}
		if term != "" && !matchesMovement(m, term) {
			continue
		}

		filtered = append(filtered, m)
	}

	return filtered
}

func matchesMovement(m models.Movement, term string) bool {
	for _, value := range []string{m.ProductName, m.ProductID, m.PerformedBy, m.Notes} {
		if strings.Contains(strings.ToLower(value), term) {
			return true
		}
	}
	return false
}

// MovementStats summarizes a filtered movement list for the reports screen.
type MovementStats struct {
	Total  int
	ByType map[string]int
	ByUser map[string]int
}

// ComputeMovementStats tallies movements by type and by performing user.
func ComputeMovementStats(movements []models.Movement) MovementStats {
	stats := MovementStats{
		Total:  len(movements),
		ByType: map[string]int{},
		ByUser: map[string]int{},
	}

	for _, t := range models.MovementTypes {
		stats.ByType[t] = 0
	}
	for _, m := range movements {
		stats.ByType[m.Type]++
		if m.PerformedBy != "" {
			stats.ByUser[m.PerformedBy]++
		}
	}

	return stats
}

// UniqueUsers lists the distinct performing users, sorted, for the user
// filter dropdown.
func UniqueUsers(movements []models.Movement) []string {
	seen := map[string]bool{}
	users := []string{}
	for _, m := range movements {
		if m.PerformedBy == "" || seen[m.PerformedBy] {
			continue
		}
		seen[m.PerformedBy] = true
		users = append(users, m.PerformedBy)
	}
	sort.Strings(users)
	return users
}
