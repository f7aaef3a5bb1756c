package invalid

//crudgen:entity
type Bad struct {
	ID int `crud:"id,length=big"`
}
