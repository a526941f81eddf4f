package model

// Location é o par latitude/longitude de um destino
type Location struct {
	Latitude  float64 `json:"lat" db:"lat"`
	Longitude float64 `json:"lng" db:"lng"`
}

// Destination é uma entrada da tabela estática de destinos usada pelo gerador
// determinístico. A tabela é carregada uma vez na inicialização e nunca mutada.
type Destination struct {
	Name                 string    `json:"nome" db:"name"`
	Address              string    `json:"endereco" db:"address"`
	Tier                 Tier      `json:"tier" db:"tier"`
	DistanceFromOriginKm float64   `json:"distancia_origem_km" db:"distance_km"`
	EntryCostBRL         float64   `json:"custo_entrada_brl" db:"entry_cost"`
	DwellTimeMinutes     int       `json:"tempo_parada_minutos" db:"dwell_minutes"`
	ExperienceTags       []string  `json:"tags_experiencia" db:"experience_tags"`
	Tips                 []string  `json:"dicas" db:"tips"`
	Description          string    `json:"descricao" db:"description"`
	Location             *Location `json:"localizacao" db:"-"`
}

// HasLocation informa se o destino tem coordenadas conhecidas
func (d *Destination) HasLocation() bool {
	return d.Location != nil
}
