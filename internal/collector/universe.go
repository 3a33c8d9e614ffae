package collector

import (
	"fmt"

	"StockScreener/internal/model"
)

// DefaultUniverse sweeps the TSE securities-code bands (1300-1499 and
// 1700-9998), covering prime, standard, and growth listings. Codes with no
// listed instrument are skipped automatically during a scan when the
// provider returns nothing for them.
func DefaultUniverse() []model.Symbol {
	var symbols []model.Symbol
	add := func(lo, hi int) {
		for c := lo; c < hi; c++ {
			code := fmt.Sprintf("%04d", c)
			symbols = append(symbols, model.Symbol{Code: code, Name: code})
		}
	}
	add(1300, 1500)
	add(1700, 9999)
	return symbols
}

// SampleUniverse is a short list of liquid large caps, useful for test
// runs where sweeping the full code range would take hours.
func SampleUniverse() []model.Symbol {
	return []model.Symbol{
		{Code: "7203", Name: "Toyota Motor"},
		{Code: "8306", Name: "Mitsubishi UFJ"},
		{Code: "9984", Name: "SoftBank Group"},
		{Code: "6758", Name: "Sony Group"},
		{Code: "8001", Name: "Itochu"},
		{Code: "9432", Name: "NTT"},
		{Code: "6861", Name: "Keyence"},
		{Code: "7974", Name: "Nintendo"},
		{Code: "4063", Name: "Shin-Etsu Chemical"},
		{Code: "4502", Name: "Takeda Pharmaceutical"},
	}
}
