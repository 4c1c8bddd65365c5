package weather

const (
	timezoneAuto = "auto"
	dateLayout   = "2006-01-02"
)

var (
	hourlyVariables = []string{
		"temperature_2m",
		"precipitation",
		"relative_humidity_2m",
		"wind_speed_10m",
	}

	dailyVariables = []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
	}

	summaryVariables = []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"wind_speed_10m_max",
	}

	climateVariables = []string{
		"temperature_2m_max",
		"temperature_2m_min",
		"temperature_2m_mean",
		"precipitation_sum",
		"wind_speed_10m_mean",
	}
)
