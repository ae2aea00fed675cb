package domain

// CategoryProcessor is the category with a hard manufacturer gate in the
// relevance filter: any plausible processor listing names AMD or Intel.
const CategoryProcessor = "Processador"

// BuildItem is one slot of a build profile: a hardware category and the
// desired product for it.
type BuildItem struct {
	Category string `json:"category"`
	Product  string `json:"product"`
}

// BuildProfile is an ordered category -> desired product mapping for one
// pricing run. Item order drives search order and ranking tie-breaks.
type BuildProfile struct {
	Name  string      `json:"name"`
	Items []BuildItem `json:"items"`
}

// WithOverrides returns a copy of the profile with desired products
// replaced for the categories present in parts. Unknown categories are
// ignored so a stale client cannot inject new slots.
func (p BuildProfile) WithOverrides(parts map[string]string) BuildProfile {
	if len(parts) == 0 {
		return p
	}
	items := make([]BuildItem, len(p.Items))
	copy(items, p.Items)
	for i := range items {
		if product, ok := parts[items[i].Category]; ok && product != "" {
			items[i].Product = product
		}
	}
	return BuildProfile{Name: p.Name, Items: items}
}

// BuildProfiles holds the preset PC tiers in display order.
var BuildProfiles = []BuildProfile{
	{
		Name: "PC Fraco",
		Items: []BuildItem{
			{Category: "Processador", Product: "Ryzen 3 4100"},
			{Category: "Placa de Vídeo", Product: "GTX 1050 Ti"},
			{Category: "Placa Mãe", Product: "A320M AM4"},
			{Category: "Memória RAM", Product: "8GB DDR4 2666"},
			{Category: "Armazenamento", Product: "SSD 240GB SATA"},
			{Category: "Fonte", Product: "Fonte 450W 80 Plus"},
			{Category: "Gabinete", Product: "Gabinete Micro ATX"},
		},
	},
	{
		Name: "PC Médio",
		Items: []BuildItem{
			{Category: "Processador", Product: "Ryzen 5 5600G"},
			{Category: "Placa de Vídeo", Product: "GTX 1660 Super"},
			{Category: "Placa Mãe", Product: "B450M AM4"},
			{Category: "Memória RAM", Product: "16GB DDR4 3200"},
			{Category: "Armazenamento", Product: "SSD NVMe 500GB"},
			{Category: "Fonte", Product: "Fonte 550W 80 Plus Bronze"},
			{Category: "Gabinete", Product: "Gabinete Mid Tower"},
		},
	},
	{
		Name: "PC Forte",
		Items: []BuildItem{
			{Category: "Processador", Product: "Ryzen 5 5600"},
			{Category: "Placa de Vídeo", Product: "RTX 3060"},
			{Category: "Placa Mãe", Product: "B550M AM4"},
			{Category: "Memória RAM", Product: "16GB DDR4 3200"},
			{Category: "Armazenamento", Product: "SSD NVMe 1TB"},
			{Category: "Fonte", Product: "Fonte 650W 80 Plus Bronze"},
			{Category: "Gabinete", Product: "Gabinete Mid Tower Vidro"},
		},
	},
	{
		Name: "PC Multitarefas",
		Items: []BuildItem{
			{Category: "Processador", Product: "Ryzen 7 5800X"},
			{Category: "Placa de Vídeo", Product: "RTX 3060 Ti"},
			{Category: "Placa Mãe", Product: "B550 ATX AM4"},
			{Category: "Memória RAM", Product: "32GB DDR4 3200"},
			{Category: "Armazenamento", Product: "SSD NVMe 1TB"},
			{Category: "Fonte", Product: "Fonte 750W 80 Plus Gold"},
			{Category: "Gabinete", Product: "Gabinete ATX Vidro"},
		},
	},
	{
		Name: "PC Multitarefas + Jogos",
		Items: []BuildItem{
			{Category: "Processador", Product: "Ryzen 7 7800X3D"},
			{Category: "Placa de Vídeo", Product: "RTX 4070"},
			{Category: "Placa Mãe", Product: "B650 AM5"},
			{Category: "Memória RAM", Product: "32GB DDR5 6000"},
			{Category: "Armazenamento", Product: "SSD NVMe 2TB"},
			{Category: "Fonte", Product: "Fonte 850W 80 Plus Gold"},
			{Category: "Gabinete", Product: "Gabinete ATX Vidro"},
		},
	},
	{
		Name: "PC Entusiasta",
		Items: []BuildItem{
			{Category: "Processador", Product: "Ryzen 9 7950X3D"},
			{Category: "Placa de Vídeo", Product: "RTX 4090"},
			{Category: "Placa Mãe", Product: "X670E ATX AM5"},
			{Category: "Memória RAM", Product: "64GB DDR5 6000"},
			{Category: "Armazenamento", Product: "SSD NVMe 4TB Gen4"},
			{Category: "Fonte", Product: "Fonte 1000W 80 Plus Platinum"},
			{Category: "Gabinete", Product: "Gabinete ATX Premium"},
		},
	},
}

// ProfileByName looks up a preset build profile by its display name.
func ProfileByName(name string) (BuildProfile, bool) {
	for _, profile := range BuildProfiles {
		if profile.Name == name {
			return profile, true
		}
	}
	return BuildProfile{}, false
}

// RefinementKeywords maps a category to the lowercase terms used both to
// refine search queries and to score listing relevance. A category with no
// entry gets an empty refinement suffix, not an error.
var RefinementKeywords = map[string][]string{
	"Processador":    {"processador", "amd", "intel", "am4", "am5"},
	"Placa de Vídeo": {"rtx", "gtx", "radeon", "gpu", "placa de vídeo"},
	"Placa Mãe":      {"placa mãe", "motherboard", "am4", "am5", "b550", "b650", "x670", "a320", "b450"},
	"Memória RAM":    {"memória", "ram", "ddr4", "ddr5"},
	"Armazenamento":  {"ssd", "nvme", "m.2", "sata"},
	"Fonte":          {"fonte", "psu", "80 plus"},
	"Gabinete":       {"gabinete", "mid tower", "atx", "micro atx"},
}

// Synonyms maps a literal product name to the expanded form used in its
// place when building a search query. Terms the marketplace search engine
// tends to misread get disambiguated here.
var Synonyms = map[string]string{
	"SSD NVMe 1TB":      "SSD NVMe 1TB M.2",
	"SSD NVMe 2TB":      "SSD NVMe 2TB M.2",
	"SSD NVMe 4TB Gen4": "SSD NVMe 4TB M.2 Gen4",
	"B550M AM4":         "Placa Mãe B550M AM4",
	"B450M AM4":         "Placa Mãe B450M AM4",
	"B650 AM5":          "Placa Mãe B650 AM5",
	"X670E ATX AM5":     "Placa Mãe X670E AM5",
}
