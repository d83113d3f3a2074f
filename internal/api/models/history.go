package models

// HistoryEntry records one parking reservation made by a user.
type HistoryEntry struct {
	VisitedDate string `db:"visiteddate"`
	Places      string `db:"places"`
	ParkingSpot int    `db:"parkingspot"`
	SpotLeft    int    `db:"spotleft"`
	Rating      int    `db:"rating"`
	CustomerID  int64  `db:"customerid"`
}

// ReserveRequest carries the reservation form. The park field packs
// place, parking spot, spots left and rating as one comma-delimited
// string; the service parses and validates it. The customer id is never
// part of the request.
type ReserveRequest struct {
	Park string `form:"park"`
}
