package db

import "meteo-api/internal/domain/entity"

// DefaultStations returns the stations served by the API.
func DefaultStations() []entity.Station {
	return []entity.Station{
		{ID: "FRPAR", Name: "Paris", Country: "FR", Region: "Île-de-France", Lat: 48.8566, Lon: 2.3522},
		{ID: "FRLYS", Name: "Lyon", Country: "FR", Region: "Auvergne-Rhône-Alpes", Lat: 45.75, Lon: 4.85},
		{ID: "FRMRS", Name: "Marseille", Country: "FR", Region: "Provence-Alpes-Côte d'Azur", Lat: 43.2965, Lon: 5.3698},
		{ID: "FRTLS", Name: "Toulouse", Country: "FR", Region: "Occitanie", Lat: 43.6047, Lon: 1.4442},
		{ID: "FRNCE", Name: "Nice", Country: "FR", Region: "Provence-Alpes-Côte d'Azur", Lat: 43.7102, Lon: 7.2620},
		{ID: "FRNTE", Name: "Nantes", Country: "FR", Region: "Pays de la Loire", Lat: 47.2184, Lon: -1.5536},
		{ID: "FRSXB", Name: "Strasbourg", Country: "FR", Region: "Grand Est", Lat: 48.5734, Lon: 7.7521},
		{ID: "FRBOD", Name: "Bordeaux", Country: "FR", Region: "Nouvelle-Aquitaine", Lat: 44.8378, Lon: -0.5792},
		{ID: "FRLIL", Name: "Lille", Country: "FR", Region: "Hauts-de-France", Lat: 50.6292, Lon: 3.0573},
		{ID: "FRORY", Name: "Orléans", Country: "FR", Region: "Centre-Val de Loire", Lat: 47.9029, Lon: 1.9093},
		{ID: "BEBRU", Name: "Bruxelles", Country: "BE", Region: "Bruxelles-Capitale", Lat: 50.8503, Lon: 4.3517},
		{ID: "CHGVA", Name: "Genève", Country: "CH", Region: "Genève", Lat: 46.2044, Lon: 6.1432},
		{ID: "CHZRH", Name: "Zürich", Country: "CH", Region: "Zürich", Lat: 47.3769, Lon: 8.5417},
		{ID: "DEBER", Name: "Berlin", Country: "DE", Lat: 52.5200, Lon: 13.4050},
		{ID: "DEMUC", Name: "München", Country: "DE", Region: "Bayern", Lat: 48.1351, Lon: 11.5820},
		{ID: "GBLON", Name: "London", Country: "GB", Region: "England", Lat: 51.5074, Lon: -0.1278},
		{ID: "ESMAD", Name: "Madrid", Country: "ES", Region: "Comunidad de Madrid", Lat: 40.4168, Lon: -3.7038},
		{ID: "ITROM", Name: "Roma", Country: "IT", Region: "Lazio", Lat: 41.9028, Lon: 12.4964},
		{ID: "NLAMS", Name: "Amsterdam", Country: "NL", Region: "Noord-Holland", Lat: 52.3676, Lon: 4.9041},
		{ID: "CAMTL", Name: "Montréal", Country: "CA", Region: "Québec", Lat: 45.5019, Lon: -73.5674},
	}
}
