package catalog

import "github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"

const (
	fallbackCategory  = "Cosmétique"
	fallbackCreatedAt = "2025-06-03T22:18:41.000000Z"
	photoBase         = "https://groupmafamo.com/images/products/"
)

// FallbackProducts is served whenever the products API cannot be used. A
// fresh slice is returned on every call.
func FallbackProducts() []domain.Product {
	p := func(id int64, name string, price int64, photo, updatedAt string) domain.Product {
		return domain.Product{
			ID:        id,
			Category:  fallbackCategory,
			Name:      name,
			Price:     price,
			Photo:     photoBase + photo,
			Status:    domain.ProductStatusStock,
			CreatedAt: fallbackCreatedAt,
			UpdatedAt: updatedAt,
		}
	}
	return []domain.Product{
		p(1, "Huile", 45000, "huile.webp", "2025-06-08T03:59:06.000000Z"),
		p(2, "Crême", 45000, "creme.webp", "2025-06-08T03:59:12.000000Z"),
		p(3, "Crême mains", 29000, "creme_mains.webp", "2025-06-08T04:00:55.000000Z"),
		p(4, "Crême Visage", 43000, "creme_visage.webp", "2025-06-08T04:00:49.000000Z"),
		p(5, "Gel Intime", 30000, "gel_intime.webp", "2025-06-08T04:00:35.000000Z"),
		p(6, "Gel 1250", 35000, "gel_1250.webp", "2025-06-08T04:00:26.000000Z"),
		p(7, "Produits Bébé", 55000, "produit_bebe.webp", "2025-06-08T04:00:22.000000Z"),
		p(8, "Gel Mains", 30000, "gel_main.webp", "2025-06-08T04:00:13.000000Z"),
		p(9, "Gel de douche", 35000, "gel_douche.webp", "2025-06-08T04:00:08.000000Z"),
		p(10, "Parfum Déo", 28000, "parfum_deo.webp", "2025-06-08T04:00:00.000000Z"),
		p(11, "Rool On", 21000, "rool_on.webp", "2025-06-08T03:59:50.000000Z"),
	}
}
