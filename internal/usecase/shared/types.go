package shared

// Write-side snapshots keep commands independent of the query read models.
type CourtSnapshot struct {
	ID        int64
	Name      string
	IsCovered bool
}

type ReservationSnapshot struct {
	ID      int64
	CourtID int64
}
