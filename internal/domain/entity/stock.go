package entity

// Stock cantidad disponible de un producto según el servicio remoto de inventario.
// El servicio remoto es la autoridad; solo se modifica con un ciclo leer-escribir explícito.
type Stock struct {
	ProductID int `json:"productId"`
	Amount    int `json:"amount"`
}
