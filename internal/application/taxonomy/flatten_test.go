package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hulumoya/agency-dashboard/internal/application/taxonomy"
	"github.com/hulumoya/agency-dashboard/internal/domain"
	"github.com/hulumoya/agency-dashboard/internal/domain/entity"
)

// árbol de prueba:
//
//	Construction (1)
//	├── Roads (2)
//	│   └── Bridges (3)
//	└── Buildings (4)
func testCategories() []entity.ServiceCategory {
	return []entity.ServiceCategory{
		{
			CategoryID:   1,
			CategoryName: "Tender Services",
			Services: []entity.ServiceNode{
				{
					ServiceID: 1, Name: "Construction",
					Services: []entity.ServiceNode{
						{
							ServiceID: 2, Name: "Roads",
							Services: []entity.ServiceNode{
								{ServiceID: 3, Name: "Bridges"},
							},
						},
						{ServiceID: 4, Name: "Buildings"},
					},
				},
			},
		},
		{CategoryID: 2, CategoryName: "Other"},
	}
}

func TestFlatten_BreadcrumbPorAncestros(t *testing.T) {
	flat, err := taxonomy.Flatten(testCategories(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Construction", flat.Breadcrumb(1))
	assert.Equal(t, "Construction / Roads", flat.Breadcrumb(2))
	assert.Equal(t, "Construction / Roads / Bridges", flat.Breadcrumb(3))
	assert.Equal(t, "Construction / Buildings", flat.Breadcrumb(4))
}

func TestFlatten_PreOrdenYExactamenteUnaVez(t *testing.T) {
	flat, err := taxonomy.Flatten(testCategories(), 1)
	require.NoError(t, err)

	// Pre-orden: el padre se emite antes que sus hijos, en el orden del árbol.
	ids := make([]int, 0, len(flat.Options))
	for _, opt := range flat.Options {
		ids = append(ids, opt.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, ids)

	// Cada nodo exactamente una vez.
	assert.Len(t, flat.Lookup, 4)

	// La profundidad refleja el nivel del árbol.
	assert.Equal(t, 0, flat.Options[0].Depth)
	assert.Equal(t, 1, flat.Options[1].Depth)
	assert.Equal(t, 2, flat.Options[2].Depth)
	assert.Equal(t, 1, flat.Options[3].Depth)
}

func TestFlatten_CategoriaAusente(t *testing.T) {
	flat, err := taxonomy.Flatten(testCategories(), 99)

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound,
		"la categoría ausente debe señalarse con ErrCategoryNotFound")
	require.NotNil(t, flat, "aun con error se devuelve un índice vacío utilizable")
	assert.Empty(t, flat.Options)
	assert.Empty(t, flat.Lookup)
}

func TestOptionsWithFallback_ServicioHuerfano(t *testing.T) {
	flat, err := taxonomy.Flatten(testCategories(), 1)
	require.NoError(t, err)

	// Un tender guardado referencia un servicio que ya no está en el árbol:
	// se antepone una entrada sintética en vez de dejar el selector inválido.
	opts := flat.OptionsWithFallback(42)
	require.Len(t, opts, 5)
	assert.Equal(t, 42, opts[0].ID)
	assert.Equal(t, "Service #42", opts[0].Label)

	// Un servicio presente no duplica entradas.
	assert.Len(t, flat.OptionsWithFallback(3), 4)

	// Sin selección se devuelven las opciones tal cual.
	assert.Len(t, flat.OptionsWithFallback(0), 4)
}
