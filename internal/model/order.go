package model

// Source column names of the raw order-line table (vw_kami_bi view export).
// The header of CSV/XLSX supplier files must use these names.
const (
	ColOrderID         = "cod_pedido"
	ColCustomerID      = "cod_cliente"
	ColCustomerName    = "nome_cliente"
	ColSalespersonID   = "cod_colaborador"
	ColSalespersonName = "nome_colaborador"
	ColBrandID         = "cod_marca"
	ColBrandName       = "desc_marca"
	ColProductGroupID  = "cod_grupo_produto"
	ColProductGroup    = "desc_grupo_produto"
	ColParentGroupID   = "cod_grupo_pai"
	ColParentGroup     = "desc_grupo_pai"
	ColCompanyID       = "empresa_nota_fiscal"
	ColActivitySector  = "ramo_atividade"
	ColState           = "uf"
	ColCity            = "cidade"
	ColDistrict        = "bairro"
	ColStatusCode      = "cod_situacao"
	ColStatusName      = "desc_situacao"
	ColNop             = "nop"
	ColInvoiceDate     = "dt_faturamento"
	ColYear            = "ano"
	ColMonth           = "mes"
	ColNetValue        = "valor_nota"
	ColGrossValue      = "total_bruto"
	ColDiscount        = "desconto_pedido"
	ColPostalCode      = "cep"
)

// OrderLine is one sanitized row of the raw sales table. Several lines may
// share an order id (one per product line); Order is the same shape after
// first-wins deduplication on the order id.
type OrderLine struct {
	OrderID         int     `json:"cod_pedido"`
	CustomerID      int     `json:"cod_cliente"`
	CustomerName    string  `json:"nome_cliente"`
	SalespersonID   int     `json:"cod_colaborador"`
	SalespersonName string  `json:"nome_colaborador"`
	BrandID         int     `json:"cod_marca"`
	BrandName       string  `json:"desc_marca"`
	ProductGroupID  int     `json:"cod_grupo_produto"`
	ProductGroup    string  `json:"desc_grupo_produto"`
	ParentGroupID   int     `json:"cod_grupo_pai"`
	ParentGroup     string  `json:"desc_grupo_pai"`
	CompanyID       int     `json:"empresa_nota_fiscal"`
	ActivitySector  string  `json:"ramo_atividade"`
	State           string  `json:"uf"`
	City            string  `json:"cidade"`
	District        string  `json:"bairro"`
	StatusCode      int     `json:"cod_situacao"`
	StatusName      string  `json:"desc_situacao"`
	Nop             string  `json:"nop"`
	InvoiceDate     string  `json:"dt_faturamento"` // raw, parsed day-first at filter time
	Year            int     `json:"ano"`
	Month           int     `json:"mes"`
	NetValue        float64 `json:"valor_nota"`
	GrossValue      float64 `json:"total_bruto"`
	Discount        float64 `json:"desconto_pedido"`
	PostalCode      string  `json:"cep"`
}

// Order is an order-level row, unique on OrderID. The representative row for
// an order is the first one encountered in input order; fields that vary
// across lines of the same order keep that first line's value.
type Order = OrderLine
