package entity

// ServiceNode es un nodo del árbol de servicios del API de administración.
// Services anida hijos a profundidad arbitraria; el árbol no tiene ciclos.
type ServiceNode struct {
	ServiceID  int           `json:"serviceId"`
	Name       string        `json:"name"`
	CategoryID int           `json:"categoryId"`
	Services   []ServiceNode `json:"services,omitempty"`
}

// ServiceCategory es la raíz del árbol: una categoría con sus servicios.
type ServiceCategory struct {
	CategoryID   int           `json:"categoryId"`
	CategoryName string        `json:"categoryName"`
	Description  string        `json:"description,omitempty"`
	Services     []ServiceNode `json:"services,omitempty"`
}
