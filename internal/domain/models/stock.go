package models

// Column positions inside a Stock row. The sheet column order is the wire
// format both the UI and existing spreadsheet formulas depend on.
const (
	StockColDateAdded = iota
	StockColSupplier
	StockColLotCost
	StockColUnitCost
	StockColListPrice
	StockColPartnerPercent
	StockColTitle
	StockColAuthor
	StockColPublisher
	StockColCollection
	StockColComments
	StockColSold
)

const (
	StockSheetRange  = "Stock!A2:M"
	StockHeaderRange = "Stock!A1:M1"

	// Data starts at sheet row 2; row 1 is the header.
	StockFirstDataRow = 2

	// Sheet column letter holding the sold flag.
	StockSoldColumn = "L"

	// SoldFlag is the sentinel written to the sold column when a copy leaves
	// the shelf. Any other value (usually an empty cell) means available.
	SoldFlag = "VENDIDO"
)

// StockItem is one physical book copy as stored in the Stock tab.
type StockItem struct {
	// RowNumber is the 1-based sheet row the item was read from. It addresses
	// the sold-flag cell on updates.
	RowNumber int

	DateAdded      string
	Supplier       string
	LotCost        string
	UnitCost       string
	ListPrice      string
	PartnerPercent string
	Title          string
	Author         string
	Publisher      string
	Collection     string
	Comments       string
	Sold           bool
}

// StockListing is the full projection served to the catalog screen.
type StockListing struct {
	Supplier       string `json:"proveedor"`
	LotCost        string `json:"precioLote"`
	UnitCost       string `json:"precioUnitario"`
	ListPrice      string `json:"precioVenta"`
	PartnerPercent string `json:"porcentajeSocio"`
	Title          string `json:"titulo"`
	Author         string `json:"autor"`
	Publisher      string `json:"editorial"`
	Collection     string `json:"coleccion"`
	Comments       string `json:"comentarios"`
}

// StockOption is the light projection the sale form autocompletes from.
type StockOption struct {
	Title          string `json:"titulo"`
	Author         string `json:"autor"`
	Supplier       string `json:"proveedor"`
	UnitCost       string `json:"precioUnitario"`
	PartnerPercent string `json:"porcentajeSocio"`
}

// Listing builds the catalog projection for the item.
func (s StockItem) Listing() StockListing {
	return StockListing{
		Supplier:       s.Supplier,
		LotCost:        s.LotCost,
		UnitCost:       s.UnitCost,
		ListPrice:      s.ListPrice,
		PartnerPercent: s.PartnerPercent,
		Title:          s.Title,
		Author:         s.Author,
		Publisher:      s.Publisher,
		Collection:     s.Collection,
		Comments:       s.Comments,
	}
}

// Option builds the sale-form projection for the item.
func (s StockItem) Option() StockOption {
	return StockOption{
		Title:          s.Title,
		Author:         s.Author,
		Supplier:       s.Supplier,
		UnitCost:       s.UnitCost,
		PartnerPercent: s.PartnerPercent,
	}
}
