package options

import "github.com/devkami/kami-sales-dashboard/internal/model"

// Internal dimension keys. The UI addresses filters by these keys; the
// display labels below are what it shows.
const (
	DimMonth           = "month"
	DimYear            = "year"
	DimSalesperson     = "salesperson"
	DimBranch          = "branch"
	DimUF              = "uf"
	DimCity            = "city"
	DimDistrict        = "district"
	DimStatus          = "status"
	DimSubProductGroup = "sub_prod_group"
	DimProductGroup    = "prod_group"
	DimBrand           = "prod_band"
	DimCompany         = "company"
)

// dimensionLabels maps internal keys to UI-facing display labels.
var dimensionLabels = map[string]string{
	DimMonth:           "Mês",
	DimYear:            "Ano",
	DimSalesperson:     "Vendedor",
	DimBranch:          "Ramo de Atividade",
	DimUF:              "Estado",
	DimCity:            "Cidade",
	DimDistrict:        "Bairro",
	DimStatus:          "Situação",
	DimSubProductGroup: "Grupo de Produto",
	DimProductGroup:    "Grupo Pai",
	DimBrand:           "Marca",
	DimCompany:         "Empresa",
}

// LabelForDimension resolves an internal dimension key to its display
// label; unknown keys yield "".
func LabelForDimension(key string) string {
	return dimensionLabels[key]
}

// DimensionForLabel resolves a display label back to its internal key;
// unknown labels yield "".
func DimensionForLabel(label string) string {
	for key, l := range dimensionLabels {
		if l == label {
			return key
		}
	}
	return ""
}

// All builds every dimension list from the table. companyNames supplies the
// configured invoice-company id-to-name labels.
func All(rows []model.Order, companyNames map[int]string) map[string][]Option {
	return map[string][]Option{
		DimMonth:           Month(rows),
		DimYear:            Year(rows),
		DimSalesperson:     Salesperson(rows),
		DimBranch:          Branch(rows),
		DimUF:              UF(rows),
		DimCity:            City(rows),
		DimDistrict:        District(rows),
		DimStatus:          Status(rows),
		DimSubProductGroup: SubProductGroup(rows),
		DimProductGroup:    ProductGroup(rows),
		DimBrand:           Brand(rows),
		DimCompany:         Company(rows, companyNames),
	}
}

// ForDimensions builds only the requested dimensions. Unknown keys are
// skipped rather than erroring, matching how the UI requests lists.
func ForDimensions(rows []model.Order, companyNames map[int]string, keys []string) map[string][]Option {
	all := All(rows, companyNames)
	lists := make(map[string][]Option, len(keys))
	for _, key := range keys {
		if list, ok := all[key]; ok {
			lists[key] = list
		}
	}
	return lists
}
