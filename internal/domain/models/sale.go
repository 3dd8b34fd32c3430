package models

const (
	SalesSheetRange  = "Ventas!A2:I"
	SalesHeaderRange = "Ventas!A1:I1"

	// SaleDateLayout is the calendar-day format persisted in column A of the
	// Ventas tab and accepted by the report date filters.
	SaleDateLayout = "2006-01-02"

	// DefaultChannel is assumed when a sale request omits the channel.
	DefaultChannel = "Local"
)

// SaleRequest is the payload the sale form submits.
type SaleRequest struct {
	Title     string `json:"titulo"`
	Author    string `json:"autor"`
	Supplier  string `json:"proveedor"`
	SalePrice string `json:"precioVenta"`
	Channel   string `json:"canal"`
}

// SaleRecord is one row of the Ventas tab. All fields are kept as the strings
// actually persisted; shares are fixed to two decimals at write time.
type SaleRecord struct {
	Date           string `json:"fecha"`
	Title          string `json:"titulo"`
	Supplier       string `json:"proveedor"`
	UnitCost       string `json:"precioUnitario"`
	SalePrice      string `json:"precioVenta"`
	PartnerPercent string `json:"porcentajeSocio"`
	PartnerShare   string `json:"gananciaSocio"`
	OwnerShare     string `json:"gananciaTuya"`
	Channel        string `json:"canal"`
}

// Row lays the record out in Ventas column order.
func (r SaleRecord) Row() []interface{} {
	return []interface{}{
		r.Date,
		r.Title,
		r.Supplier,
		r.UnitCost,
		r.SalePrice,
		r.PartnerPercent,
		r.PartnerShare,
		r.OwnerShare,
		r.Channel,
	}
}

// SaleOutcome tags how far a sale request got before terminating. The append
// and the sold-flag update are two separate network writes, so callers must be
// able to tell "nothing happened" from "half happened".
type SaleOutcome int

const (
	// SaleCompleted means the sale row was appended and the stock row marked.
	SaleCompleted SaleOutcome = iota
	// SaleStockNotFound means no unsold row matched the requested identity;
	// nothing was written.
	SaleStockNotFound
	// SalePersistenceError means a store call failed before the sale row was
	// appended; nothing durable happened.
	SalePersistenceError
	// SalePartial means the sale row was appended but the sold-flag update
	// failed. The sale is durable and the stock row still reads as available.
	SalePartial
)

// String implements fmt.Stringer for log fields.
func (o SaleOutcome) String() string {
	switch o {
	case SaleCompleted:
		return "completed"
	case SaleStockNotFound:
		return "stock_not_found"
	case SalePersistenceError:
		return "persistence_error"
	case SalePartial:
		return "partial"
	default:
		return "unknown"
	}
}

// SaleResult is the terminal state of one sale request.
type SaleResult struct {
	Outcome SaleOutcome
	// Record is populated for SaleCompleted and SalePartial.
	Record SaleRecord
	// Err carries the underlying failure for SalePersistenceError and
	// SalePartial.
	Err error
}
