package entity

import "time"

// Status of a widget.
type Status string

// Widget is a persisted widget.
//
//crudgen:entity path=/widgets compressed
type Widget struct {
	ID       int32     `crud:"id,length=11"`
	Name     string    `crud:"length=64,comment=display name"`
	Price    float64   `crud:"max=10,precision=2"`
	Active   bool      `db:"is_active"`
	Status   Status    `crud:"length=16"`
	Created  time.Time `crud:"column=created_at,nullable"`
	Notes    string    `crud:"-"`
	internal int
}

// Gadget is not an entity.
type Gadget struct {
	ID int
}

//crudgen:entity table=parts
type Part struct {
	Serial int64 `crud:"id,length=20"`
	Labels []string
}
