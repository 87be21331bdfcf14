package usecase_catalog

import "github.com/meulencv/wenomadus/internal/model"

func SampleQuestions() []model.Question {
	return []model.Question{
		{Text: "¿Te gustan los destinos con playa?", Category: model.CategoryBeach},
		{Text: "¿Prefieres destinos con montaña?", Category: model.CategoryMountain},
		{Text: "¿Te interesa visitar museos?", Category: model.CategoryCulture},
		{Text: "¿Te gusta la gastronomía local?", Category: model.CategoryFood},
		{Text: "¿Buscas un destino económico?", Category: model.CategoryBudget},
		{Text: "¿Prefieres un clima cálido?", Category: model.CategoryWarmClimate},
		{Text: "¿Te gustan las actividades al aire libre?", Category: model.CategoryOutdoors},
		{Text: "¿Prefieres destinos urbanos?", Category: model.CategoryUrban},
		{Text: "¿Te interesa el turismo histórico?", Category: model.CategoryHistory},
		{Text: "¿Te gustaría un destino con vida nocturna?", Category: model.CategoryNightlife},
		{Text: "¿Es importante que haya buenas opciones de transporte público?", Category: model.CategoryTransport},
		{Text: "¿Te interesan destinos con parques temáticos?", Category: model.CategoryThemeParks},
		{Text: "¿Prefieres un destino con poca aglomeración de turistas?", Category: model.CategoryLowTourism},
		{Text: "¿Te gustan los deportes acuáticos?", Category: model.CategoryWaterSports},
		{Text: "¿Es importante que sea un destino familiar?", Category: model.CategoryFamily},
		{Text: "¿Buscas un destino romántico?", Category: model.CategoryRomantic},
		{Text: "¿Te interesan las compras?", Category: model.CategoryShopping},
		{Text: "¿Prefieres un destino con actividades de aventura?", Category: model.CategoryAdventure},
		{Text: "¿Te gustaría un destino con buenas opciones de relax?", Category: model.CategoryRelaxation},
		{Text: "¿Es importante la sostenibilidad del destino?", Category: model.CategorySustainability},
		{Text: "¿Prefieres destinos en Europa?", Category: model.CategoryEurope},
		{Text: "¿Te interesa viajar a Asia?", Category: model.CategoryAsia},
		{Text: "¿Consideras América como destino?", Category: model.CategoryAmericas},
		{Text: "¿Te gustaría viajar a un destino exótico?", Category: model.CategoryExotic},
		{Text: "¿Prefieres destinos donde sea fácil comunicarse en español?", Category: model.CategorySpanishLanguage},
	}
}

func SampleDestinations() []model.Destination {
	return []model.Destination{
		{
			Name:     "Barcelona",
			IATACode: "BCN",
			Country:  "España",
			Attributes: model.NewCategorySet(
				model.CategoryBeach, model.CategoryUrban, model.CategoryCulture, model.CategoryFood,
				model.CategoryHistory, model.CategoryNightlife, model.CategoryTransport,
				model.CategoryShopping, model.CategoryEurope, model.CategorySpanishLanguage,
			),
		},
		{
			Name:     "París",
			IATACode: "CDG",
			Country:  "Francia",
			Attributes: model.NewCategorySet(
				model.CategoryUrban, model.CategoryCulture, model.CategoryFood, model.CategoryHistory,
				model.CategoryRomantic, model.CategoryTransport, model.CategoryShopping, model.CategoryEurope,
			),
		},
		{
			Name:     "Cancún",
			IATACode: "CUN",
			Country:  "México",
			Attributes: model.NewCategorySet(
				model.CategoryBeach, model.CategoryWarmClimate, model.CategoryWaterSports,
				model.CategoryNightlife, model.CategoryRelaxation, model.CategoryAmericas,
				model.CategoryExotic, model.CategorySpanishLanguage, model.CategoryFamily,
			),
		},
		{
			Name:     "Lisboa",
			IATACode: "LIS",
			Country:  "Portugal",
			Attributes: model.NewCategorySet(
				model.CategoryUrban, model.CategoryCulture, model.CategoryFood, model.CategoryHistory,
				model.CategoryBudget, model.CategoryTransport, model.CategoryEurope, model.CategoryWarmClimate,
			),
		},
		{
			Name:     "Tokio",
			IATACode: "NRT",
			Country:  "Japón",
			Attributes: model.NewCategorySet(
				model.CategoryUrban, model.CategoryCulture, model.CategoryFood, model.CategoryTransport,
				model.CategoryShopping, model.CategoryThemeParks, model.CategoryAsia, model.CategoryExotic,
			),
		},
		{
			// No airport: recommended without a flight search.
			Name:    "Andorra",
			Country: "Andorra",
			Attributes: model.NewCategorySet(
				model.CategoryMountain, model.CategoryOutdoors, model.CategoryAdventure,
				model.CategoryShopping, model.CategoryLowTourism, model.CategoryEurope,
			),
		},
	}
}
