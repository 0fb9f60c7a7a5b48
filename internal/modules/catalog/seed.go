package catalog

import "github.com/google/uuid"

func intPtr(n int) *int { return &n }

// SeedItems returns the default shop catalog, used to prime an empty
// database on first boot.
func SeedItems() []*Item {
	items := []*Item{
		{Name: "Corte de Cabello", Kind: KindService, Price: 150},
		{Name: "Corte de Barba", Kind: KindService, Price: 120},
		{Name: "Corte + Barba", Kind: KindService, Price: 250},
		{Name: "Perfilado de Cejas", Kind: KindService, Price: 50},
		{Name: "Limpieza Facial", Kind: KindService, Price: 180},
		{Name: "Paquete Premier (Corte, Barba, Exfoliación)", Kind: KindService, Price: 400},
		{Name: "Paquete Infantil", Kind: KindService, Price: 130},

		{Name: "Pomada Premium", Kind: KindProduct, Price: 200, Cost: 100, Brand: "Professional", Stock: intPtr(15)},
		{Name: "Cera Mate", Kind: KindProduct, Price: 180, Cost: 90, Brand: "Professional", Stock: intPtr(12)},
		{Name: "Aceite para Barba", Kind: KindProduct, Price: 220, Cost: 110, Brand: "Professional", Stock: intPtr(8)},
		{Name: "Shampoo Tonificante", Kind: KindProduct, Price: 150, Cost: 75, Brand: "Professional", Stock: intPtr(20)},
		{Name: "After Shave Balsam", Kind: KindProduct, Price: 120, Cost: 60, Brand: "Professional", Stock: intPtr(10)},

		{Name: "Agua Refrescante", Kind: KindProduct, Price: 0, Cost: 5, Brand: "General", Stock: intPtr(100)},
	}
	for _, item := range items {
		item.ID = uuid.New()
		item.IsActive = true
	}
	return items
}
