package repository

import (
	"context"
	"fmt"

	"find-fuel/internal/data/entity"
	"find-fuel/pkg/database"

	"go.uber.org/zap"
)

type FuelPriceRepository interface {
	FindWithCoordinates(ctx context.Context) ([]*entity.FuelPrice, error)
}

type fuelPriceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFuelPriceRepository(db database.PgxIface, log *zap.Logger) FuelPriceRepository {
	return &fuelPriceRepository{
		db:  db,
		log: log,
	}
}

// FindWithCoordinates retrieves every price record that has coordinates.
// Rows with null latitude or longitude never take part in proximity ranking.
func (fr *fuelPriceRepository) FindWithCoordinates(ctx context.Context) ([]*entity.FuelPrice, error) {
	query := `
		SELECT id_revenda, nome_revenda, produto, valor_venda,
		       unidade_medida, bandeira, data_atualizacao, latitude, longitude
		FROM combustivel_preco_consulta
		WHERE latitude IS NOT NULL
		  AND longitude IS NOT NULL
	`

	rows, err := fr.db.Query(ctx, query)
	if err != nil {
		fr.log.Error("Failed to query fuel prices", zap.Error(err))
		return nil, fmt.Errorf("find fuel prices: %w", err)
	}
	defer rows.Close()

	var prices []*entity.FuelPrice
	for rows.Next() {
		var price entity.FuelPrice
		err := rows.Scan(
			&price.IDRevenda,
			&price.NomeRevenda,
			&price.Produto,
			&price.ValorVenda,
			&price.UnidadeMedida,
			&price.Bandeira,
			&price.DataAtualizacao,
			&price.Latitude,
			&price.Longitude,
		)
		if err != nil {
			fr.log.Error("Failed to scan fuel price row", zap.Error(err))
			return nil, fmt.Errorf("scan fuel price row: %w", err)
		}
		prices = append(prices, &price)
	}

	if err := rows.Err(); err != nil {
		fr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate fuel price rows: %w", err)
	}

	return prices, nil
}
