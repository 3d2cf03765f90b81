package response

import (
	"find-fuel/internal/data/entity"
)

// FuelPriceResponse is one ranked row of the proximity query, distance in
// kilometers rounded to 3 decimal places.
type FuelPriceResponse struct {
	IDRevenda     int     `json:"id_revenda"`
	Nome          string  `json:"nome"`
	Produto       string  `json:"produto"`
	ValorVenda    float64 `json:"valor_venda"`
	Distancia     float64 `json:"distancia"`
	UnidadeMedida string  `json:"unidade_medida"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Bandeira      string  `json:"bandeira"`
	AtualizadoEm  string  `json:"atualizado_em"`
}

func FuelPriceToResponse(price *entity.FuelPrice, distanceKm float64) FuelPriceResponse {
	resp := FuelPriceResponse{
		IDRevenda:     price.IDRevenda,
		Nome:          price.NomeRevenda,
		Produto:       price.Produto,
		ValorVenda:    price.ValorVenda,
		Distancia:     distanceKm,
		UnidadeMedida: price.UnidadeMedida,
		Bandeira:      price.Bandeira,
		AtualizadoEm:  price.DataAtualizacao.Format("2006-01-02"),
	}

	if price.Latitude != nil {
		resp.Latitude = *price.Latitude
	}
	if price.Longitude != nil {
		resp.Longitude = *price.Longitude
	}

	return resp
}
