package dto

import "github.com/shopspring/decimal"

// CartItem una línea del carrito de venta o del despacho de ruta.
type CartItem struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

// CheckoutRequest cuerpo de POST /api/checkout (venta mostrador).
type CheckoutRequest struct {
	SellerID   int             `json:"seller_id" validate:"required,gt=0"`
	Items      []CartItem      `json:"items" validate:"required,min=1,dive"`
	AmountPaid decimal.Decimal `json:"amount_paid"`
}

// CheckoutResponse ticket resultante de la venta.
type CheckoutResponse struct {
	Ticket string          `json:"ticket"`
	Total  decimal.Decimal `json:"total"`
	Change decimal.Decimal `json:"change"`
}

// DispatchRequest cuerpo de POST /api/dispatch (cargar ruta de un vendedor).
type DispatchRequest struct {
	SellerID int        `json:"seller_id" validate:"required,gt=0"`
	Items    []CartItem `json:"items" validate:"required,min=1,dive"`
}

// ReturnLine devolución declarada de un producto durante el corte.
type ReturnLine struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

// SettlementRequest cuerpo de POST /api/settlement (corte de caja).
type SettlementRequest struct {
	SellerID     int             `json:"seller_id" validate:"required,gt=0"`
	Returns      []ReturnLine    `json:"returns" validate:"dive"`
	CashReceived decimal.Decimal `json:"cash_received"`
}

// SettlementResponse resultado del corte.
type SettlementResponse struct {
	DailySaleTotal   decimal.Decimal `json:"daily_sale_total"`
	PreviousBalance  decimal.Decimal `json:"previous_balance"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
	CashReceived     decimal.Decimal `json:"cash_received"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// SettlementPreviewDTO estado del corte antes de ejecutarlo
// (GET /api/settlement/preview).
type SettlementPreviewDTO struct {
	SellerID        int                 `json:"seller_id"`
	RouteClosed     bool                `json:"route_closed"`
	PreviousBalance decimal.Decimal     `json:"previous_balance"`
	Dispatches      []DispatchedItemDTO `json:"dispatches"`
}

// DispatchedItemDTO una SALIDA del día pendiente de corte.
type DispatchedItemDTO struct {
	ProductID   int             `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// AddStockRequest cuerpo de POST /api/warehouse/stock (entrada de insumo).
// Si CaptureUnit es "MAYOR" la cantidad llega en kg o litros y se convierte
// x1000 a la unidad base antes de persistir.
type AddStockRequest struct {
	IngredientID int             `json:"ingredient_id" validate:"required,gt=0"`
	Amount       decimal.Decimal `json:"amount"`
	CaptureUnit  string          `json:"capture_unit" validate:"omitempty,oneof=BASE MAYOR"`
}
