package utils

// Business rules. These were re-typed literals scattered across the legacy
// dashboard scripts; the engine owns them now.
const (
	// Orders with at least this many units are wholesale.
	WHOLESALE_THRESHOLD = 6

	// Flat income-tax rate, applied once, never compounded.
	TAX_RATE = 0.19

	// Flat delivery surcharge in CLP, subtracted once per qualifying order.
	SHIPPING_SURCHARGE = 2990
)

// Sale type classification
const (
	SALE_TYPE_WHOLESALE = "wholesale"
	SALE_TYPE_RETAIL    = "retail"
)

// Shipping method that carries the delivery surcharge
const SHIPPING_METHOD_HOME_DELIVERY_RM = "Despacho a Domicilio (Región Metropolitana)"

// Source column labels (sales file)
const (
	COLUMN_ORDER_ID        = "ID"
	COLUMN_DATE            = "Fecha"
	COLUMN_SKU             = "SKU del Producto"
	COLUMN_UNIT_PRICE      = "Precio del Producto"
	COLUMN_QUANTITY        = "Cantidad de Productos"
	COLUMN_DISCOUNT        = "Descuento del producto"
	COLUMN_MARGIN_PCT      = "Margen del producto (%)"
	COLUMN_PAYMENT_STATUS  = "Estado del Pago"
	COLUMN_CURRENCY        = "Moneda"
	COLUMN_REGION          = "Región de Envío"
	COLUMN_SHIPPING_METHOD = "Nombre del método de envío"
	COLUMN_COUPON          = "Cupones"
)

// Source column labels (category file)
const (
	COLUMN_CATEGORY = "Categoria"
)

// Source column labels (imports file, after header normalization)
const (
	COLUMN_IMPORT_DATE   = "FECHA_IMPORTACION"
	COLUMN_IMPORT_SKU    = "SKU_DEL_PRODUCTO"
	COLUMN_IMPORT_NAME   = "PRODUCTO"
	COLUMN_IMPORT_CAT    = "CATEGORIA"
	COLUMN_INITIAL_STOCK = "STOCK_INICIAL"
)

// Placeholder for import rows without a product name
const PRODUCT_UNSPECIFIED = "Sin especificar"

// Rollup group keys
const (
	GROUP_BY_PERIOD    = "period"
	GROUP_BY_CATEGORY  = "category"
	GROUP_BY_SKU       = "sku"
	GROUP_BY_REGION    = "region"
	GROUP_BY_PAYMENT   = "payment"
	GROUP_BY_SHIPPING  = "shipping"
	GROUP_BY_SALE_TYPE = "sale_type"
)

// Period granularities
const (
	GRANULARITY_DAY   = "day"
	GRANULARITY_WEEK  = "week"
	GRANULARITY_MONTH = "month"
	GRANULARITY_YEAR  = "year"
)

const DATE_FORMAT = "2006-01-02"

// Some legacy exports carry day-first dates
const DATE_FORMAT_DAY_FIRST = "02-01-2006"

const DEFAULT_TOP_PRODUCTS = 10
