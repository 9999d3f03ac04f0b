package request

// Summary is a read-only row of the dashboard activity list.
type Summary struct {
	ID        string
	Category  Category
	Title     string
	Status    Status
	Date      string
	Requester string
}

// SeedSummaries returns a fresh copy of the static demo list.
func SeedSummaries() []Summary {
	return []Summary{
		{ID: "1", Category: CategoryEthics, Title: "Demande comité éthique - Client OSI-2024", Status: StatusPending, Date: "22/09/2025", Requester: "Jean Dupont"},
		{ID: "2", Category: CategoryVisit, Title: "Visite client - Salle Terre", Status: StatusApproved, Date: "21/09/2025", Requester: "Marie Martin"},
		{ID: "3", Category: CategoryTravel, Title: "Voyage professionnel - Berlin", Status: StatusPending, Date: "20/09/2025", Requester: "Pierre Durant"},
		{ID: "4", Category: CategoryPurchase, Title: "Achat matériel - Amazon", Status: StatusApproved, Date: "19/09/2025", Requester: "Sophie Leroy"},
	}
}

func CountByCategory(list []Summary, c Category) int {
	n := 0
	for _, s := range list {
		if s.Category == c {
			n++
		}
	}
	return n
}

// Recent returns at most limit entries from the head of list.
func Recent(list []Summary, limit int) []Summary {
	if limit < 0 {
		limit = 0
	}
	if len(list) <= limit {
		return list
	}
	return list[:limit]
}
