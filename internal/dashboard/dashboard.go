package dashboard

import "requestdesk/internal/request"

const RecentLimit = 5

type Card struct {
	Category request.Category
	request.Info
	Count int
}

type Model struct {
	Cards  []Card
	Recent []request.Summary
	All    []request.Summary
}

// Build derives the dashboard from a request list. Counts are recomputed on
// every call.
func Build(list []request.Summary) Model {
	cards := make([]Card, 0, len(request.Categories))
	for _, c := range request.Categories {
		cards = append(cards, Card{
			Category: c,
			Info:     c.Info(),
			Count:    request.CountByCategory(list, c),
		})
	}
	return Model{
		Cards:  cards,
		Recent: request.Recent(list, RecentLimit),
		All:    list,
	}
}
