// Package taxonomy aplana el árbol de servicios del API de administración en
// estructuras consultables por las vistas: un índice id → breadcrumb y una
// lista ordenada para menús de selección.
package taxonomy

import (
	"fmt"
	"strings"

	"github.com/hulumoya/agency-dashboard/internal/domain"
	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
)

// Separator une los nombres de los ancestros en el breadcrumb.
const Separator = " / "

// Option es una entrada del menú de selección de servicio, en el orden del
// recorrido pre-orden del árbol. Depth sirve solo para indentación visual.
type Option struct {
	ID    int
	Label string
	Depth int
}

// Flat es el resultado de aplanar una categoría del árbol de servicios.
type Flat struct {
	// Lookup mapea cada serviceId alcanzable a su breadcrumb
	// ("Ancestro / Hijo / Nieto"). Cada nodo aparece exactamente una vez.
	Lookup map[int]string
	// Options lista las entradas en pre-orden para el selector.
	Options []Option
}

// Flatten busca la categoría categoryID entre las raíces y aplana su subárbol
// con un recorrido pre-orden en profundidad. Si la categoría no existe
// devuelve un Flat vacío y domain.ErrCategoryNotFound: la vista lo degrada a
// una advertencia, no es fatal.
func Flatten(categories []entity.ServiceCategory, categoryID int) (*Flat, error) {
	f := &Flat{Lookup: make(map[int]string)}

	for _, cat := range categories {
		if cat.CategoryID != categoryID {
			continue
		}
		walk(f, cat.Services, nil, 0)
		return f, nil
	}
	return f, domain.ErrCategoryNotFound
}

// walk emite el nodo antes de descender: un nodo sin hijos intermedios nunca
// se salta y el orden de Options replica el del árbol.
func walk(f *Flat, nodes []entity.ServiceNode, trail []string, depth int) {
	for _, node := range nodes {
		current := append(trail[:len(trail):len(trail)], node.Name)
		breadcrumb := strings.Join(current, Separator)
		f.Lookup[node.ServiceID] = breadcrumb
		f.Options = append(f.Options, Option{ID: node.ServiceID, Label: breadcrumb, Depth: depth})
		if len(node.Services) > 0 {
			walk(f, node.Services, current, depth+1)
		}
	}
}

// Breadcrumb devuelve el breadcrumb de id, o "" si no está en el árbol.
func (f *Flat) Breadcrumb(id int) string {
	if f == nil {
		return ""
	}
	return f.Lookup[id]
}

// OptionsWithFallback devuelve las opciones del menú garantizando que
// selected tenga una entrada: si un tender guardado referencia un servicio
// que ya no existe en el árbol recién cargado, se antepone una entrada
// sintética con el id crudo en lugar de dejar el selector en estado inválido.
func (f *Flat) OptionsWithFallback(selected int) []Option {
	if selected <= 0 {
		return f.Options
	}
	if _, ok := f.Lookup[selected]; ok {
		return f.Options
	}
	fallback := Option{ID: selected, Label: fmt.Sprintf("Service #%d", selected)}
	return append([]Option{fallback}, f.Options...)
}
