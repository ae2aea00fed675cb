package usecase

import (
	"testing"

	"github.com/partscout/backend/internal/domain"
)

func ramRecord(title, price string) domain.ListingRecord {
	return domain.ListingRecord{
		Title:           title,
		PriceCandidates: []string{price},
		Link:            "https://www.amazon.com.br/dp/B000TEST",
	}
}

func TestExtractResults(t *testing.T) {
	t.Run("produces normalized results in input order", func(t *testing.T) {
		records := []domain.ListingRecord{
			ramRecord("Memória Kingston 16GB DDR4", "R$ 249,90"),
			ramRecord("Memória Corsair 16GB DDR4", "R$ 219"),
		}

		results, skips := ExtractResults("Memória RAM", "16GB DDR4 3200", records, 10)
		if len(results) != 2 {
			t.Fatalf("len(results) = %d, want 2", len(results))
		}
		if skips.Total() != 0 {
			t.Errorf("skips = %v, want none", skips)
		}
		if results[0].Product != "Memória Kingston 16GB DDR4" {
			t.Errorf("results[0].Product = %q, input order not preserved", results[0].Product)
		}
		if results[0].Price != "R$ 249,90" {
			t.Errorf("results[0].Price = %q, want %q", results[0].Price, "R$ 249,90")
		}
		if results[1].Price != "R$ 219,00" {
			t.Errorf("results[1].Price = %q, want whole-unit normalization to %q", results[1].Price, "R$ 219,00")
		}
		if results[0].Store != domain.StoreAmazon {
			t.Errorf("results[0].Store = %q, want %q", results[0].Store, domain.StoreAmazon)
		}
		if results[0].Category != "Memória RAM" {
			t.Errorf("results[0].Category = %q, want %q", results[0].Category, "Memória RAM")
		}
	})

	t.Run("never exceeds limit", func(t *testing.T) {
		var records []domain.ListingRecord
		for i := 0; i < 30; i++ {
			records = append(records, ramRecord("Memória 16GB DDR4", "R$ 199,00"))
		}

		results, _ := ExtractResults("Memória RAM", "16GB DDR4 3200", records, 5)
		if len(results) != 5 {
			t.Errorf("len(results) = %d, want limit of 5", len(results))
		}
	})

	t.Run("skips records with missing title", func(t *testing.T) {
		records := []domain.ListingRecord{
			{PriceCandidates: []string{"R$ 199,00"}},
			ramRecord("Memória 16GB DDR4", "R$ 199,00"),
		}

		results, skips := ExtractResults("Memória RAM", "16GB DDR4 3200", records, 10)
		if len(results) != 1 {
			t.Fatalf("len(results) = %d, want 1", len(results))
		}
		if skips[domain.SkipNoTitle] != 1 {
			t.Errorf("skips[no_title] = %d, want 1", skips[domain.SkipNoTitle])
		}
	})

	t.Run("skips records without a usable price candidate", func(t *testing.T) {
		records := []domain.ListingRecord{
			{Title: "Memória 16GB DDR4", PriceCandidates: []string{"", ""}},
			{Title: "Memória 8GB DDR4"},
		}

		results, skips := ExtractResults("Memória RAM", "16GB DDR4 3200", records, 10)
		if len(results) != 0 {
			t.Fatalf("len(results) = %d, want 0", len(results))
		}
		if skips[domain.SkipNoPrice] != 2 {
			t.Errorf("skips[no_price] = %d, want 2", skips[domain.SkipNoPrice])
		}
	})

	t.Run("takes first non-empty price candidate", func(t *testing.T) {
		records := []domain.ListingRecord{
			{
				Title:           "Memória 16GB DDR4",
				PriceCandidates: []string{"", "R$ 189,90", "R$ 149,90 - R$ 229,90"},
			},
		}

		results, _ := ExtractResults("Memória RAM", "16GB DDR4 3200", records, 10)
		if len(results) != 1 {
			t.Fatalf("len(results) = %d, want 1", len(results))
		}
		if results[0].Price != "R$ 189,90" {
			t.Errorf("results[0].Price = %q, want first non-empty candidate normalized", results[0].Price)
		}
	})

	t.Run("skips irrelevant listings", func(t *testing.T) {
		records := []domain.ListingRecord{
			ramRecord("Cabo HDMI 2 metros", "R$ 19,90"),
		}

		// Unknown category: no refinement keywords, so nothing passes.
		results, skips := ExtractResults("Webcam", "Webcam Full HD", records, 10)
		if len(results) != 0 {
			t.Fatalf("len(results) = %d, want 0", len(results))
		}
		if skips[domain.SkipIrrelevant] != 1 {
			t.Errorf("skips[irrelevant] = %d, want 1", skips[domain.SkipIrrelevant])
		}
	})

	t.Run("processor gate applies during extraction", func(t *testing.T) {
		records := []domain.ListingRecord{
			ramRecord("Cooler Master Fan RGB", "R$ 99,90"),
			ramRecord("Processador AMD Ryzen 5 5600", "R$ 899,00"),
		}

		results, skips := ExtractResults("Processador", "Ryzen 5 5600", records, 10)
		if len(results) != 1 {
			t.Fatalf("len(results) = %d, want 1", len(results))
		}
		if results[0].Product != "Processador AMD Ryzen 5 5600" {
			t.Errorf("results[0].Product = %q, want the Ryzen listing", results[0].Product)
		}
		if skips[domain.SkipIrrelevant] != 1 {
			t.Errorf("skips[irrelevant] = %d, want 1", skips[domain.SkipIrrelevant])
		}
	})
}
