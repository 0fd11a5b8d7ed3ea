package zippopotam

type LookupAPIResponse struct {
	PostCode            string  `json:"post code"`
	Country             string  `json:"country"`
	CountryAbbreviation string  `json:"country abbreviation"`
	Places              []Place `json:"places"`
}

type Place struct {
	PlaceName         string `json:"place name"`
	Longitude         string `json:"longitude"`
	State             string `json:"state"`
	StateAbbreviation string `json:"state abbreviation"`
	Latitude          string `json:"latitude"`
}
