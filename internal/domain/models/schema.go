package models

// Expected header rows. Column position, not header text, is what the code
// reads, but a drifted header is the cheapest early signal that someone
// reordered columns in the spreadsheet.
var (
	StockHeaders = []string{
		"Fecha",
		"Proveedor",
		"Precio Lote",
		"Precio Unitario",
		"Precio Venta",
		"% Socio",
		"Título",
		"Autor",
		"Editorial",
		"Colección",
		"Comentarios",
		"Vendido",
	}

	SalesHeaders = []string{
		"Fecha",
		"Título",
		"Proveedor",
		"Precio Unitario",
		"Precio Venta",
		"% Socio",
		"Ganancia Socio",
		"Ganancia Tuya",
		"Canal",
	}
)
