// Copyright (c) 2026 Meliponário. All rights reserved.
// Author: r.monteiro.dev@gmail.com

package catalog

import "time"

// Embedded reference dataset.
//
// These records are compiled into the binary and served whenever the remote
// backend is absent, misconfigured, or failing. They are a read-only demo
// fixture, not a source of truth: no RemoteID, no write path, loaded once
// and shared across all reads without synchronization.

var datasetLoadedAt = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

var referenceSpecies = []*Species{
	{
		Slug:           "jatai",
		ScientificName: "Tetragonisca angustula",
		PopularNames:   []string{"Jataí", "Jataí-amarela", "Abelha-ouro"},
		Family:         "Apidae",
		Genus:          "Tetragonisca",
		Size:           SizeSmall,
		HoneyYield:     TierLow,
		Difficulty:     TierLow,
		Conservation:   ConservationLeastConcern,
		Behavior:       "Dócil e extremamente adaptável, nidifica em cavidades urbanas e rurais. Entrada do ninho com tubo de cera característico.",
		Honey:          HoneyProfile{Taste: "Levemente ácido e floral", Color: "Âmbar claro", AnnualYieldKg: 0.8, Properties: "Muito apreciado na medicina popular"},
		Biomes:         []string{"mata-atlantica", "cerrado", "caatinga", "pampa"},
		CareNotes:      []string{"Tolera caixas pequenas", "Multiplicação simples por perturbação mínima", "Resistente a forídeos quando a colônia é forte"},
		Sources:        []string{"Nogueira-Neto (1997)", "Villas-Bôas (2018)"},
		CreatedAt:      datasetLoadedAt,
		UpdatedAt:      datasetLoadedAt,
	},
	{
		Slug:           "urucu-verdadeira",
		ScientificName: "Melipona scutellaris",
		PopularNames:   []string{"Uruçu-verdadeira", "Uruçu-nordestina", "Uruçu"},
		Family:         "Apidae",
		Genus:          "Melipona",
		Subgenus:       "Michmelia",
		Size:           SizeLarge,
		HoneyYield:     TierHigh,
		Difficulty:     TierMedium,
		Conservation:   ConservationVulnerable,
		Behavior:       "Mansa, de voo forte. Colônias populosas que exigem caixas amplas e boa oferta floral.",
		Honey:          HoneyProfile{Taste: "Suave, levemente cítrico", Color: "Âmbar", AnnualYieldKg: 4.5, Properties: "Alta umidade, requer desumidificação para guarda longa"},
		Biomes:         []string{"mata-atlantica", "caatinga"},
		CareNotes:      []string{"Sensível ao frio abaixo de 15°C", "Divisão apenas com discos de cria madura", "Exige sombreamento no semiárido"},
		Sources:        []string{"Nogueira-Neto (1997)", "Imperatriz-Fonseca et al. (2017)"},
		CreatedAt:      datasetLoadedAt,
		UpdatedAt:      datasetLoadedAt,
	},
	{
		Slug:           "mandacaia",
		ScientificName: "Melipona quadrifasciata",
		PopularNames:   []string{"Mandaçaia", "Amanaçaí"},
		Family:         "Apidae",
		Genus:          "Melipona",
		Size:           SizeLarge,
		HoneyYield:     TierMedium,
		Difficulty:     TierMedium,
		Conservation:   ConservationLeastConcern,
		Behavior:       "Listras amarelas marcantes no abdome. Defensiva apenas quando a colônia é manipulada sem fumaça leve.",
		Honey:          HoneyProfile{Taste: "Encorpado, final herbal", Color: "Âmbar escuro", AnnualYieldKg: 2.5, Properties: "Cristaliza lentamente"},
		Biomes:         []string{"mata-atlantica", "cerrado"},
		CareNotes:      []string{"Prefere cavidades profundas", "Boa aceitação de caixas INPA"},
		Sources:        []string{"Nogueira-Neto (1997)"},
		CreatedAt:      datasetLoadedAt,
		UpdatedAt:      datasetLoadedAt,
	},
	{
		Slug:           "tiuba",
		ScientificName: "Melipona fasciculata",
		PopularNames:   []string{"Tiúba", "Uruçu-cinzenta"},
		Family:         "Apidae",
		Genus:          "Melipona",
		Size:           SizeLarge,
		HoneyYield:     TierHigh,
		Difficulty:     TierMedium,
		Conservation:   ConservationLeastConcern,
		Behavior:       "Pilar da meliponicultura maranhense. Forrageia bem em áreas de babaçual e campos alagados.",
		Honey:          HoneyProfile{Taste: "Doce intenso, pouco ácido", Color: "Âmbar claro", AnnualYieldKg: 5.0, Properties: "Tradicional na culinária do Maranhão"},
		Biomes:         []string{"amazonia", "cerrado"},
		CareNotes:      []string{"Exige alta umidade relativa", "Colônias grandes com até 3 mil operárias"},
		Sources:        []string{"Kerr et al. (1996)"},
		CreatedAt:      datasetLoadedAt,
		UpdatedAt:      datasetLoadedAt,
	},
	{
		Slug:           "urucu-amarela",
		ScientificName: "Melipona rufiventris",
		PopularNames:   []string{"Uruçu-amarela", "Tujuba"},
		Family:         "Apidae",
		Genus:          "Melipona",
		Size:           SizeLarge,
		HoneyYield:     TierMedium,
		Difficulty:     TierHigh,
		Conservation:   ConservationEndangered,
		Behavior:       "Exigente quanto à flora nativa; pouco tolerante a ambientes alterados.",
		Honey:          HoneyProfile{Taste: "Frutado", Color: "Âmbar avermelhado", AnnualYieldKg: 2.0, Properties: "Produção limitada, alto valor"},
		Biomes:         []string{"cerrado", "mata-atlantica"},
		CareNotes:      []string{"Criação recomendada apenas dentro da área de ocorrência natural", "Evitar divisões frequentes"},
		Sources:        []string{"ICMBio Lista Vermelha (2022)"},
		CreatedAt:      datasetLoadedAt,
		UpdatedAt:      datasetLoadedAt,
	},
	{
		Slug:           "manduri",
		ScientificName: "Melipona marginata",
		PopularNames:   []string{"Manduri", "Manduri-menor"},
		Family:         "Apidae",
		Genus:          "Melipona",
		Size:           SizeMedium,
		HoneyYield:     TierLow,
		Difficulty:     TierMedium,
		Conservation:   ConservationVulnerable,
		Behavior:       "A menor das meliponas. Tímida, abandona a postura se manipulada com frequência.",
		Honey:          HoneyProfile{Taste: "Delicado, levemente ácido", Color: "Claro", AnnualYieldKg: 1.0, Properties: "Raro no mercado"},
		Biomes:         []string{"mata-atlantica"},
		CareNotes:      []string{"Caixas com câmaras baixas", "Inverno exige alimentação artificial"},
		Sources:        []string{"Nogueira-Neto (1997)"},
		CreatedAt:      datasetLoadedAt,
		UpdatedAt:      datasetLoadedAt,
	},
	{
		Slug:           "guaraipo",
		ScientificName: "Melipona bicolor",
		PopularNames:   []string{"Guaraipo", "Guarupu"},
		Family:         "Apidae",
		Genus:          "Melipona",
		Size:           SizeMedium,
		HoneyYield:     TierLow,
		Difficulty:     TierHigh,
		Conservation:   ConservationVulnerable,
		Behavior:       "Única melipona com poliginia verdadeira: várias rainhas fisogástricas convivem na mesma colônia. Nidifica próximo ao solo.",
		Honey:          HoneyProfile{Taste: "Ácido marcante", Color: "Âmbar escuro", AnnualYieldKg: 1.2, Properties: "Fermenta com facilidade"},
		Biomes:         []string{"mata-atlantica"},
		CareNotes:      []string{"Sensível ao calor", "Preferir áreas sombreadas de mata"},
		Sources:        []string{"Velthuis et al. (2006)"},
		CreatedAt:      datasetLoadedAt,
		UpdatedAt:      datasetLoadedAt,
	},
	{
		Slug:           "mirim-droryana",
		ScientificName: "Plebeia droryana",
		PopularNames:   []string{"Mirim", "Mirim-droryana", "Abelha-mosquito"},
		Family:         "Apidae",
		Genus:          "Plebeia",
		Size:           SizeSmall,
		HoneyYield:     TierLow,
		Difficulty:     TierLow,
		Conservation:   ConservationLeastConcern,
		Behavior:       "Minúscula e urbana, ocupa frestas de muro e caixas de luz. Ideal para iniciantes e educação ambiental.",
		Honey:          HoneyProfile{Taste: "Floral suave", Color: "Quase incolor", AnnualYieldKg: 0.3, Properties: "Produção pequena, consumo local"},
		Biomes:         []string{"mata-atlantica", "cerrado", "pampa"},
		CareNotes:      []string{"Dispensa grandes pastos", "Multiplica bem em caixas mini"},
		Sources:        []string{"Witter & Nunes-Silva (2014)"},
		CreatedAt:      datasetLoadedAt,
		UpdatedAt:      datasetLoadedAt,
	},
	{
		Slug:           "bora",
		ScientificName: "Tetragona clavipes",
		PopularNames:   []string{"Borá", "Abelha-vamo-nós-embora"},
		Family:         "Apidae",
		Genus:          "Tetragona",
		Size:           SizeMedium,
		HoneyYield:     TierMedium,
		Difficulty:     TierMedium,
		Conservation:   ConservationLeastConcern,
		Behavior:       "Coleta resinas intensamente; própolis abundante. Entrada do ninho em quilha característica.",
		Honey:          HoneyProfile{Taste: "Resinoso", Color: "Âmbar esverdeado", AnnualYieldKg: 1.5, Properties: "Valorizado pelo própolis"},
		Biomes:         []string{"cerrado", "mata-atlantica", "amazonia"},
		CareNotes:      []string{"Pode vedar frestas com resina rapidamente", "Manejo com espátula firme"},
		Sources:        []string{"Camargo & Pedro (2013)"},
		CreatedAt:      datasetLoadedAt,
		UpdatedAt:      datasetLoadedAt,
	},
	{
		Slug:           "irai",
		ScientificName: "Nannotrigona testaceicornis",
		PopularNames:   []string{"Iraí", "Abelha-cachorro"},
		Family:         "Apidae",
		Genus:          "Nannotrigona",
		Size:           SizeSmall,
		HoneyYield:     TierLow,
		Difficulty:     TierLow,
		Conservation:   ConservationLeastConcern,
		Behavior:       "Robusta em ambiente urbano; fecha a entrada do ninho à noite com cortina de cerume.",
		Honey:          HoneyProfile{Taste: "Doce neutro", Color: "Claro", AnnualYieldKg: 0.5, Properties: "Boa polinizadora de hortas"},
		Biomes:         []string{"mata-atlantica", "cerrado"},
		CareNotes:      []string{"Excelente para polinização em estufas"},
		Sources:        []string{"Cruz et al. (2004)"},
		CreatedAt:      datasetLoadedAt,
		UpdatedAt:      datasetLoadedAt,
	},
	{
		Slug:           "tubuna",
		ScientificName: "Scaptotrigona bipunctata",
		PopularNames:   []string{"Tubuna", "Tapezuá"},
		Family:         "Apidae",
		Genus:          "Scaptotrigona",
		Size:           SizeMedium,
		HoneyYield:     TierMedium,
		Difficulty:     TierMedium,
		Conservation:   ConservationLeastConcern,
		Behavior:       "Colônias muito populosas, defensivas com mordidas inofensivas. Enxameia com facilidade.",
		Honey:          HoneyProfile{Taste: "Levemente picante", Color: "Âmbar", AnnualYieldKg: 2.0, Properties: "Forte atividade antimicrobiana relatada"},
		Biomes:         []string{"mata-atlantica", "pampa"},
		CareNotes:      []string{"Entradas múltiplas exigem caixa bem vedada", "Boa espécie para produção de própolis"},
		Sources:        []string{"Nogueira-Neto (1997)"},
		CreatedAt:      datasetLoadedAt,
		UpdatedAt:      datasetLoadedAt,
	},
	{
		Slug:           "moca-branca",
		ScientificName: "Frieseomelitta doederleini",
		PopularNames:   []string{"Moça-branca"},
		Family:         "Apidae",
		Genus:          "Frieseomelitta",
		Size:           SizeSmall,
		HoneyYield:     TierLow,
		Difficulty:     TierMedium,
		Conservation:   ConservationLeastConcern,
		Behavior:       "Pontas das asas brancas. Não forma favos de cria regulares, o que torna a divisão mais delicada.",
		Honey:          HoneyProfile{Taste: "Ácido frutado", Color: "Claro", AnnualYieldKg: 0.6, Properties: "Armazenado em potes espalhados"},
		Biomes:         []string{"caatinga", "cerrado"},
		CareNotes:      []string{"Divisão exige transferência de potes de cria", "Muito resistente à seca"},
		Sources:        []string{"Zanella (2000)"},
		CreatedAt:      datasetLoadedAt,
		UpdatedAt:      datasetLoadedAt,
	},
}

var referenceBreeders = []*Breeder{
	{
		ID:           "0195a001-0000-7000-8000-000000000001",
		Name:         "Meliponário Flor do Sertão",
		WhatsApp:     "+55 74 99111-0001",
		Bio:          "Criação de uruçu-nordestina há três gerações no sertão baiano.",
		City:         "Jacobina",
		State:        "BA",
		PostalCode:   "44700-000",
		Latitude:     -11.1804,
		Longitude:    -40.5136,
		Status:       []Status{StatusSale, StatusInformation},
		Verified:     true,
		RatingAvg:    4.8,
		RatingCount:  12,
		SpeciesSlugs: []string{"urucu-verdadeira", "jatai", "moca-branca"},
		CreatedAt:    datasetLoadedAt,
		UpdatedAt:    datasetLoadedAt,
	},
	{
		ID:           "0195a001-0000-7000-8000-000000000002",
		Name:         "Recanto das Jataís",
		WhatsApp:     "+55 71 99111-0002",
		Bio:          "Meliponário urbano focado em educação ambiental e enxames de jataí.",
		City:         "Salvador",
		State:        "BA",
		PostalCode:   "40015-160",
		Latitude:     -12.9714,
		Longitude:    -38.5014,
		Status:       []Status{StatusExchange, StatusInformation},
		Verified:     false,
		RatingAvg:    4.2,
		RatingCount:  5,
		SpeciesSlugs: []string{"jatai", "irai", "mirim-droryana"},
		CreatedAt:    datasetLoadedAt,
		UpdatedAt:    datasetLoadedAt,
	},
	{
		ID:           "0195a001-0000-7000-8000-000000000003",
		Name:         "Abelhas do Vale",
		WhatsApp:     "+55 11 99111-0003",
		Bio:          "Produção de mel de mandaçaia e manduri no Vale do Paraíba.",
		City:         "São José dos Campos",
		State:        "SP",
		PostalCode:   "12209-004",
		Latitude:     -23.1791,
		Longitude:    -45.8872,
		Status:       []Status{StatusSale},
		Verified:     true,
		RatingAvg:    4.5,
		RatingCount:  20,
		SpeciesSlugs: []string{"mandacaia", "manduri", "jatai"},
		CreatedAt:    datasetLoadedAt,
		UpdatedAt:    datasetLoadedAt,
	},
	{
		ID:           "0195a001-0000-7000-8000-000000000004",
		Name:         "Sítio Guaraipo",
		WhatsApp:     "+55 41 99111-0004",
		Bio:          "Conservação de guaraipo e tubuna em área de araucárias.",
		City:         "Campo Largo",
		State:        "PR",
		PostalCode:   "83601-000",
		Latitude:     -25.4599,
		Longitude:    -49.5282,
		Status:       []Status{StatusExchange, StatusInformation},
		Verified:     true,
		RatingAvg:    5.0,
		RatingCount:  7,
		SpeciesSlugs: []string{"guaraipo", "tubuna", "mirim-droryana"},
		CreatedAt:    datasetLoadedAt,
		UpdatedAt:    datasetLoadedAt,
	},
	{
		ID:           "0195a001-0000-7000-8000-000000000005",
		Name:         "Tiúba do Maranhão",
		WhatsApp:     "+55 98 99111-0005",
		Bio:          "Criação tradicional de tiúba em sistema agroflorestal de babaçu.",
		City:         "São Luís",
		State:        "MA",
		PostalCode:   "65015-560",
		Latitude:     -2.5307,
		Longitude:    -44.3068,
		Status:       []Status{StatusSale, StatusInformation},
		Verified:     false,
		RatingAvg:    4.0,
		RatingCount:  3,
		SpeciesSlugs: []string{"tiuba"},
		CreatedAt:    datasetLoadedAt,
		UpdatedAt:    datasetLoadedAt,
	},
	{
		ID:           "0195a001-0000-7000-8000-000000000006",
		Name:         "Meliponário Serra da Canastra",
		WhatsApp:     "+55 37 99111-0006",
		Bio:          "Uruçu-amarela e mandaçaia no cerrado mineiro, com foco em reflorestamento.",
		City:         "São Roque de Minas",
		State:        "MG",
		PostalCode:   "37928-000",
		Latitude:     -20.2472,
		Longitude:    -46.3656,
		Status:       []Status{StatusInformation},
		Verified:     true,
		RatingAvg:    4.6,
		RatingCount:  9,
		SpeciesSlugs: []string{"urucu-amarela", "mandacaia", "bora"},
		CreatedAt:    datasetLoadedAt,
		UpdatedAt:    datasetLoadedAt,
	},
	{
		ID:           "0195a001-0000-7000-8000-000000000007",
		Name:         "Borá & Cia",
		WhatsApp:     "+55 62 99111-0007",
		Bio:          "Especializado em borá e produção de própolis de abelha nativa.",
		City:         "Pirenópolis",
		State:        "GO",
		PostalCode:   "72980-000",
		Latitude:     -15.8517,
		Longitude:    -48.9583,
		Status:       []Status{StatusSale, StatusExchange},
		Verified:     false,
		RatingAvg:    3.9,
		RatingCount:  8,
		SpeciesSlugs: []string{"bora", "jatai"},
		CreatedAt:    datasetLoadedAt,
		UpdatedAt:    datasetLoadedAt,
	},
	{
		ID:           "0195a001-0000-7000-8000-000000000008",
		Name:         "Casa do Mel Nativo",
		WhatsApp:     "+55 51 99111-0008",
		Bio:          "Mirins e tubunas adaptadas ao clima gaúcho.",
		City:         "Gramado",
		State:        "RS",
		PostalCode:   "95670-000",
		Latitude:     -29.3747,
		Longitude:    -50.8764,
		Status:       []Status{StatusSale, StatusInformation},
		Verified:     false,
		RatingAvg:    0,
		RatingCount:  0,
		SpeciesSlugs: []string{"mirim-droryana", "tubuna"},
		CreatedAt:    datasetLoadedAt,
		UpdatedAt:    datasetLoadedAt,
	},
	{
		ID:           "0195a001-0000-7000-8000-000000000009",
		Name:         "Uruçu Capixaba",
		WhatsApp:     "+55 27 99111-0009",
		Bio:          "Multiplicação de uruçu e iraí para novos criadores.",
		City:         "Domingos Martins",
		State:        "ES",
		PostalCode:   "29260-000",
		Latitude:     -20.3633,
		Longitude:    -40.6594,
		Status:       []Status{StatusSale, StatusExchange, StatusInformation},
		Verified:     true,
		RatingAvg:    4.9,
		RatingCount:  15,
		SpeciesSlugs: []string{"urucu-verdadeira", "irai"},
		CreatedAt:    datasetLoadedAt,
		UpdatedAt:    datasetLoadedAt,
	},
	{
		ID:          "0195a001-0000-7000-8000-000000000010",
		Name:        "Meliponário Chapada Viva",
		WhatsApp:    "+55 75 99111-0010",
		Bio:         "Resgate de enxames e manejo de moça-branca na Chapada Diamantina.",
		City:        "Lençóis",
		State:       "BA",
		PostalCode:  "46960-000",
		// Location never geocoded — the resolution chain places this
		// profile by state centroid on the map.
		Latitude:     0,
		Longitude:    0,
		Status:       []Status{StatusInformation},
		Verified:     false,
		RatingAvg:    4.1,
		RatingCount:  4,
		SpeciesSlugs: []string{"moca-branca", "jatai"},
		CreatedAt:    datasetLoadedAt,
		UpdatedAt:    datasetLoadedAt,
	},
}
