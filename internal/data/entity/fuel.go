package entity

import "time"

// FuelPrice is one row of the fuel price lookup table, keyed by
// (retailer id, product). The table is read-only here; an external
// ingestion process owns the writes.
type FuelPrice struct {
	IDRevenda       int       `db:"id_revenda"`
	NomeRevenda     string    `db:"nome_revenda"`
	Produto         string    `db:"produto"`
	ValorVenda      float64   `db:"valor_venda"`
	UnidadeMedida   string    `db:"unidade_medida"`
	Bandeira        string    `db:"bandeira"`
	DataAtualizacao time.Time `db:"data_atualizacao"`
	Latitude        *float64  `db:"latitude"`
	Longitude       *float64  `db:"longitude"`
}
