package domain

import "time"

type Review struct {
	ID        string
	Name      string
	Rating    int
	Text      string
	Approved  bool
	CreatedAt time.Time
}

type ReviewPatch struct {
	Name     *string
	Rating   *int
	Text     *string
	Approved *bool
}
