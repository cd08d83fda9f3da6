package services

import (
	"math"
	"sort"

	"github.com/dave9314/online-market/internal/models"
)

// roundRating rounds to one decimal place, half away from zero. Every
// endpoint that reports an average goes through this single function.
func roundRating(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// Aggregate computes the canonical summary for one item's ratings.
// An empty slice yields (0.0, 0), never NaN.
func Aggregate(ratings []models.Rating) models.RatingSummary {
	if len(ratings) == 0 {
		return models.RatingSummary{}
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return models.RatingSummary{
		AverageRating: roundRating(float64(sum) / float64(len(ratings))),
		TotalRatings:  len(ratings),
	}
}

// AggregateBatch groups ratings by item and summarizes each requested
// item. Items without ratings get a zero-valued entry, so callers never
// have to special-case missing keys.
func AggregateBatch(itemIDs []int, ratings []models.Rating) map[int]models.RatingSummary {
	grouped := make(map[int][]models.Rating, len(itemIDs))
	for _, r := range ratings {
		grouped[r.ItemID] = append(grouped[r.ItemID], r)
	}

	result := make(map[int]models.RatingSummary, len(itemIDs))
	for _, id := range itemIDs {
		result[id] = Aggregate(grouped[id])
	}
	return result
}

// RankTopRated filters out unrated items and orders the rest by average
// rating descending, ties broken by rating count descending. The sort is
// stable, so equally ranked items keep their incoming relative order
// (newest first when the input came sorted by creation time). The full
// ranked set is returned; pagination is the caller's concern.
func RankTopRated(items []models.Item) []models.Item {
	ranked := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.TotalRatings > 0 {
			ranked = append(ranked, item)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AverageRating != ranked[j].AverageRating {
			return ranked[i].AverageRating > ranked[j].AverageRating
		}
		return ranked[i].TotalRatings > ranked[j].TotalRatings
	})

	return ranked
}
