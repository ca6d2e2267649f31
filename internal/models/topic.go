package models

type Topic struct {
	Slug        string `db:"slug"        json:"slug"`
	Description string `db:"description" json:"description"`
}
